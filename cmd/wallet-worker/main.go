// wallet-worker drains the entity event queue. It exists so downstream
// consumers (audit trail, cache invalidation, notifications) have a
// process to live in; for now it acknowledges and logs every event.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wallet/internal/amqp"
	"wallet/internal/config"
	"wallet/internal/log"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg := config.Load()

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Component: log.ComponentAMQP,
		Handler: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: log.ParseLevel(cfg.LogLevel),
		}),
	})
	log.SetDefault(logger)

	if cfg.AMQPURL == "" {
		slog.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		slog.Error("Failed to connect to AMQP broker", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("Worker started", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)

	err = client.ConsumeEntityEvents(ctx, func(event *amqp.EntityEvent) error {
		slog.Info("Entity event received",
			"kind", event.Kind,
			"action", event.Action,
			"id", event.ID,
			"timestamp", event.Timestamp)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Consumer stopped", "error", err)
		os.Exit(1)
	}

	slog.Info("Worker stopped")
}
