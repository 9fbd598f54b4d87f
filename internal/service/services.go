// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
)

// Services aggregates every business-logic service used by the handlers.
// Services that accept request payloads are wrapped with their validation
// decorators.
type Services struct {
	AuthService     AuthService
	UserService     UserService
	BookmarkService BookmarkService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		UserService:     NewUserValidationService().Wrap(NewUserService(storages.UserRepository, logger)),
		BookmarkService: NewBookmarkValidationService().Wrap(NewBookmarkService(storages.BookmarkRepository, logger)),
		AppInfoService:  appInfoService,
	}, nil
}
