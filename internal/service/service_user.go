// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService returns a UserService backed by userRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetMe returns the user already resolved by the auth guard.
func (u *userService) GetMe(ctx context.Context, user models.User) models.User {
	return user
}

// EditUser applies the supplied profile fields and returns the updated user.
// An empty request only bumps the modification time.
func (u *userService) EditUser(ctx context.Context, userID int64, request models.EditUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	update := request.ToUpdate()
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		update.Email = &email
	}

	user, err := u.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return user, nil
}
