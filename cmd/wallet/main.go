package main

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wallet/internal/amqp"
	"wallet/internal/config"
	"wallet/internal/http"
	"wallet/internal/log"
	"wallet/internal/middleware/ratelimit"
	"wallet/internal/services"
	"wallet/internal/storage"
)

func main() {
	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg := config.Load()

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Component: log.ComponentApp,
		Handler: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: log.ParseLevel(cfg.LogLevel),
		}),
	})
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	repo, err := storage.Open(cfg.SQLiteDBPath)
	if err != nil {
		slog.Error("Failed to open storage", "path", cfg.SQLiteDBPath, "error", err)
		os.Exit(1)
	}

	// The broker is optional. A connect failure degrades to local-only
	// operation instead of refusing to start.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			slog.Warn("AMQP unavailable, continuing without event publishing", "error", err)
			amqpClient = nil
		} else {
			slog.Info("Connected to AMQP broker", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	tracker := services.NewTrackerService(repo, amqpClient)
	summary := services.NewSummaryService(repo)

	srv := http.NewServer(cfg.Port, tracker, summary, ratelimit.Config{
		RequestsPerMinute: cfg.RateLimitPerMinute,
		Burst:             cfg.RateLimitBurst,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	if err := tracker.Close(); err != nil {
		slog.Error("Failed to close services", "error", err)
	}

	slog.Info("Server stopped")
}
