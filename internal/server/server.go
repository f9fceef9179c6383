package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"celerey/internal/logger"
)

// Server represents the HTTP server lifecycle.
type Server struct {
	httpServer *http.Server
}

// New constructs a Server listening on port. There is no write timeout so
// event streams can stay open; they end when Shutdown starts.
func New(port string, handler http.Handler) *Server {
	baseCtx, cancel := context.WithCancel(context.Background())
	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       2 * time.Minute,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	httpServer.RegisterOnShutdown(cancel)

	return &Server{httpServer: httpServer}
}

// Start begins listening for HTTP traffic.
func (s *Server) Start() error {
	logger.Get().Infow("starting http server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully terminates all active connections.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Get().Info("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}
