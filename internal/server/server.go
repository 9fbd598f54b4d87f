// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"time"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/handler"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case err := <-errCh:
		// the listener failed before any stop signal
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
	}

	shutdownErr := s.Shutdown()
	if err := <-errCh; err != nil {
		return err
	}
	if shutdownErr != nil {
		return shutdownErr
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// Shutdown waits at most shutdownTimeout for in-flight requests.
func (s *server) Shutdown() error {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	return s.httpServer.Shutdown(ctx)
}
