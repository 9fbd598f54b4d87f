// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/handler"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/server"
	"github.com/MKhiriev/bookmark-keeper/internal/service"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/models"
)

const notAvailable = "N/A"

type App struct {
	storages *store.Storages
	handlers *handler.Handlers
	server   server.Server

	logger *logger.Logger
}

// New connects to the database, applies migrations and builds every layer
// of the server. The returned App owns the database connection.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	if cfg.App.Version == "" {
		cfg.App.Version = notAvailable
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	app, err := build(storages, cfg, log)
	if err != nil {
		return nil, errors.Join(err, storages.Close())
	}

	return app, nil
}

func build(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		storages: storages,
		handlers: handlers,
		server:   srv,
		logger:   log,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down and
// closes the database.
func (a *App) Run(ctx context.Context) error {
	runErr := a.server.RunServer(ctx)

	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("error closing storages")
		return errors.Join(runErr, err)
	}

	return runErr
}
