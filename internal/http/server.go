package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"wallet/internal/log"
	"wallet/internal/middleware/ratelimit"
	"wallet/internal/middleware/security"
	"wallet/internal/middleware/trace"
	"wallet/internal/services"
)

// Server wires the routes, middleware and services behind one listener.
type Server struct {
	httpServer *http.Server
	tracker    *services.TrackerService
	summary    *services.SummaryService
	limiter    *ratelimit.Limiter
}

// NewServer builds the server on the given port.
func NewServer(port string, tracker *services.TrackerService, summary *services.SummaryService, limiterCfg ratelimit.Config) *Server {
	s := &Server{
		tracker: tracker,
		summary: summary,
		limiter: ratelimit.NewLimiter(limiterCfg),
	}

	s.httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/readyz", s.handleReadyz)

	mux.HandleFunc("/api/dashboard-data/", s.handleDashboardData)
	mux.HandleFunc("/api/income/", s.handleIncomeAPI)
	mux.HandleFunc("/api/expense/", s.handleExpenseAPI)
	mux.HandleFunc("/api/expenses/", s.handleExpenseAPI)
	mux.HandleFunc("/api/transactions/", s.handleTransactionsAPI)
	mux.HandleFunc("/api/categories/", s.handleCategoriesAPI)
	mux.HandleFunc("/api/search/", s.handleSearch)
	mux.HandleFunc("/export/", s.handleExport)

	mux.HandleFunc("/income/", s.handleIncomeForms)
	mux.HandleFunc("/expense/", s.handleExpenseForms)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	tracer := trace.NewMiddleware(extractClientIP)
	limited := s.limiter.Middleware(extractClientIP, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "60")
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
	})

	requestLogger := log.New(log.Config{Handler: slog.Default().Handler()}).
		WithComponent(log.ComponentHTTP)

	var handler http.Handler = mux
	handler = limitMutations(limited, handler)
	handler = log.Middleware(requestLogger)(handler)
	handler = tracer.Middleware(handler)
	handler = headers.Middleware(handler)
	return handler
}

// limitMutations applies the rate limiter to writing methods only; reads
// pass through unthrottled.
func limitMutations(limited func(http.Handler) http.Handler, next http.Handler) http.Handler {
	guarded := limited(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			guarded.ServeHTTP(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// extractClientIP prefers proxy headers over the socket address.
func extractClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return strings.TrimSpace(real)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	s.handleDashboardData(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if _, _, _, err := s.summary.Totals(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "Storage unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ready"))
}

// Start runs the listener until it fails or is shut down.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the rate limiter and drains the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
