// Package server provides the HTTP server implementation
package server

import (
	"context"
	"errors"
	"fmt"
	"k8s-azure-app/internal/config"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	srv      *http.Server
	listener net.Listener
}

// New creates a new server instance
func New(cfg *config.Config, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		srv:    &http.Server{Handler: handler},
	}
}

// Listen binds the configured port and announces it
func (s *Server) Listen() error {
	// Convert port string to int
	port, err := strconv.Atoi(s.cfg.API.Port)
	if err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}
	s.listener = ln
	s.srv.Addr = ln.Addr().String()

	bound := s.Port()
	s.logger.Info(fmt.Sprintf("Server running on port %d", bound))
	s.logger.Info(fmt.Sprintf("Health check available at http://localhost:%d/health", bound))
	return nil
}

// Port returns the port actually bound, or 0 before Listen
func (s *Server) Port() int {
	if s.listener == nil {
		return 0
	}
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// Serve accepts connections until ctx is cancelled, then drains in-flight
// requests for at most the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("server is not listening")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.API.ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("Server exiting")
	return nil
}

// Start binds the port and serves until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}
