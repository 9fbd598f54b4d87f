// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/service"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn       func(ctx context.Context, request models.AuthRequest) (models.Token, error)
	signinFn       func(ctx context.Context, request models.AuthRequest) (models.Token, error)
	signTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	return m.signupFn(ctx, request)
}

func (m *mockAuthService) Signin(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	return m.signinFn(ctx, request)
}

func (m *mockAuthService) SignToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.signTokenFn(ctx, user)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	editUserFn func(ctx context.Context, userID int64, request models.EditUserRequest) (models.User, error)
}

func (m *mockUserService) GetMe(_ context.Context, user models.User) models.User {
	return user
}

func (m *mockUserService) EditUser(ctx context.Context, userID int64, request models.EditUserRequest) (models.User, error) {
	return m.editUserFn(ctx, userID, request)
}

// mockBookmarkService implements service.BookmarkService for unit tests.
type mockBookmarkService struct {
	getBookmarksFn    func(ctx context.Context, userID int64) ([]models.Bookmark, error)
	getBookmarkByIDFn func(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)
	createBookmarkFn  func(ctx context.Context, userID int64, request models.CreateBookmarkRequest) (models.Bookmark, error)
	editBookmarkFn    func(ctx context.Context, userID, bookmarkID int64, request models.EditBookmarkRequest) (models.Bookmark, error)
	deleteBookmarkFn  func(ctx context.Context, userID, bookmarkID int64) error
}

func (m *mockBookmarkService) GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	return m.getBookmarksFn(ctx, userID)
}

func (m *mockBookmarkService) GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	return m.getBookmarkByIDFn(ctx, userID, bookmarkID)
}

func (m *mockBookmarkService) CreateBookmark(ctx context.Context, userID int64, request models.CreateBookmarkRequest) (models.Bookmark, error) {
	return m.createBookmarkFn(ctx, userID, request)
}

func (m *mockBookmarkService) EditBookmarkByID(ctx context.Context, userID, bookmarkID int64, request models.EditBookmarkRequest) (models.Bookmark, error) {
	return m.editBookmarkFn(ctx, userID, bookmarkID, request)
}

func (m *mockBookmarkService) DeleteBookmarkByID(ctx context.Context, userID, bookmarkID int64) error {
	return m.deleteBookmarkFn(ctx, userID, bookmarkID)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over svcs with a nop logger and no
// request timeout.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// withAuthenticatedUser emulates the auth middleware.
func withAuthenticatedUser(r *http.Request, user models.User) *http.Request {
	r = injectNopLogger(r)
	return r.WithContext(utils.WithUser(r.Context(), &user))
}

// authAs returns an AuthService that accepts only token "valid" and
// resolves it to user.
func authAs(user models.User) *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, tokenString string) (models.User, error) {
			if tokenString != "valid" {
				return models.User{}, service.ErrTokenIsExpiredOrInvalid
			}
			return user, nil
		},
	}
}

func strPtr(s string) *string { return &s }
