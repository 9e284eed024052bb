// Package server owns HTTP server initialization and lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/matiasleandrokruk/exprmcp/internal/api"
	"github.com/matiasleandrokruk/exprmcp/internal/api/handlers"
)

// Config holds HTTP server configuration.
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns default HTTP server configuration. WriteTimeout must
// exceed the backend invocation timeout: a tool call holds its response for
// the full subprocess run.
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Server wraps the HTTP server around the bridge router.
type Server struct {
	config Config
	logger *zap.Logger
	http   *http.Server
}

// New creates an HTTP server serving the bridge routes for the given backend.
func New(b handlers.Backend, config Config, logger *zap.Logger) *Server {
	router := api.NewRouter(b, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		config: config,
		logger: logger,
		http:   httpServer,
	}
}

// Start runs the HTTP server and blocks until it stops. A shutdown-initiated
// close is not an error.
func (s *Server) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests up to
// the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}
