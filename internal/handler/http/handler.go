// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout     time.Duration
	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		requestTimeout:     cfg.RequestTimeout,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		logger:             logger,
	}
}
