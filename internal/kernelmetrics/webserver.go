package kernelmetrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SkanUJkod/SkanUJkod/internal/ctxlog"
)

// Server is the optional HTTP endpoint exposing /health and /metrics. A
// port of 0 or below means disabled; Start then does nothing.
type Server struct {
	metrics    *Metrics
	httpServer *http.Server
}

// NewServer wires m into a server that is not yet listening.
func NewServer(m *Metrics) *Server {
	return &Server{metrics: m}
}

func (s *Server) healthHandler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctxlog.FromContext(ctx).Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	}
}

// Start launches the HTTP server in a goroutine. It returns immediately.
func (s *Server) Start(ctx context.Context, port int) {
	logger := ctxlog.FromContext(ctx)
	if port <= 0 {
		logger.Debug("Metrics server not started: disabled.")
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.healthHandler(ctx))
	mux.Handle("/metrics", s.metrics.Handler())

	addr := fmt.Sprintf(":%d", port)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}

	go func() {
		logger.Info("🩺 Health/metrics server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Health/metrics server failed unexpectedly", "error", err)
		}
	}()
}

// Close shuts the server down gracefully, waiting up to five seconds for
// in-flight scrapes.
func (s *Server) Close(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if s.httpServer == nil {
		logger.Debug("Metrics server was not running.")
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	logger.Info("🩺 Shutting down health/metrics server...")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Health/metrics server shutdown failed", "error", err)
		return err
	}
	return nil
}
