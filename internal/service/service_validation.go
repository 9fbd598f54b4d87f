// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/bookmark-keeper/internal/validators"
	"github.com/MKhiriev/bookmark-keeper/models"
)

// AuthValidationService checks credentials payloads before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	request.Email = strings.TrimSpace(request.Email)
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Token{}, fmt.Errorf("error during signup request validation: %w", err)
	}

	return v.inner.Signup(ctx, request)
}

func (v *AuthValidationService) Signin(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	request.Email = strings.TrimSpace(request.Email)
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Token{}, fmt.Errorf("error during signin request validation: %w", err)
	}

	return v.inner.Signin(ctx, request)
}

func (v *AuthValidationService) SignToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.SignToken(ctx, user)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return v.inner.Authenticate(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}

// UserValidationService checks profile edits before they reach the wrapped
// UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *UserValidationService) GetMe(ctx context.Context, user models.User) models.User {
	return v.inner.GetMe(ctx, user)
}

func (v *UserValidationService) EditUser(ctx context.Context, userID int64, request models.EditUserRequest) (models.User, error) {
	if request.Email != nil {
		email := strings.TrimSpace(*request.Email)
		request.Email = &email
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during user edit request validation: %w", err)
	}

	return v.inner.EditUser(ctx, userID, request)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}

// BookmarkValidationService checks bookmark payloads and identifiers before
// they reach the wrapped BookmarkService.
type BookmarkValidationService struct {
	inner     BookmarkService
	validator validators.Validator
}

func NewBookmarkValidationService() BookmarkServiceWrapper {
	return &BookmarkValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *BookmarkValidationService) GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	return v.inner.GetBookmarks(ctx, userID)
}

func (v *BookmarkValidationService) GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	if bookmarkID <= 0 {
		return models.Bookmark{}, ErrInvalidBookmarkID
	}

	return v.inner.GetBookmarkByID(ctx, userID, bookmarkID)
}

func (v *BookmarkValidationService) CreateBookmark(ctx context.Context, userID int64, request models.CreateBookmarkRequest) (models.Bookmark, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Bookmark{}, fmt.Errorf("error during bookmark creation request validation: %w", err)
	}

	return v.inner.CreateBookmark(ctx, userID, request)
}

func (v *BookmarkValidationService) EditBookmarkByID(ctx context.Context, userID, bookmarkID int64, request models.EditBookmarkRequest) (models.Bookmark, error) {
	if bookmarkID <= 0 {
		return models.Bookmark{}, ErrInvalidBookmarkID
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Bookmark{}, fmt.Errorf("error during bookmark edit request validation: %w", err)
	}

	return v.inner.EditBookmarkByID(ctx, userID, bookmarkID, request)
}

func (v *BookmarkValidationService) DeleteBookmarkByID(ctx context.Context, userID, bookmarkID int64) error {
	if bookmarkID <= 0 {
		return ErrInvalidBookmarkID
	}

	return v.inner.DeleteBookmarkByID(ctx, userID, bookmarkID)
}

func (v *BookmarkValidationService) Wrap(wrapper BookmarkService) BookmarkService {
	v.inner = wrapper
	return v
}
