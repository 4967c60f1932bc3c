// Package server hosts the built web app locally so it can be verified:
// static files with SPA fallback, a health probe, and a version endpoint.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/davidarcher/pagecheck/internal/common"
	"github.com/davidarcher/pagecheck/internal/config"
)

// Server manages the HTTP server and routes.
type Server struct {
	cfg    *config.Config
	router *http.ServeMux
	server *http.Server
	logger *common.Logger
}

// New creates a new HTTP server for the configured app directory.
func New(cfg *config.Config, logger *common.Logger) *Server {
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	s.router = s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Serve.Host, cfg.Serve.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.withMiddleware(s.router),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start() error {
	s.logger.Info().
		Str("address", s.server.Addr).
		Str("dir", s.cfg.Serve.Dir).
		Msg("HTTP server starting")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info().Msg("HTTP server stopped")
	return nil
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
