// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bookmark-keeper/models"
)

// AuthService registers users, verifies credentials and issues or checks
// access tokens.
type AuthService interface {
	Signup(ctx context.Context, request models.AuthRequest) (models.Token, error)
	Signin(ctx context.Context, request models.AuthRequest) (models.Token, error)
	SignToken(ctx context.Context, user models.User) (models.Token, error)

	// Authenticate verifies tokenString and resolves the user it was issued to.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// UserService reads and edits the profile of the authenticated user.
type UserService interface {
	GetMe(ctx context.Context, user models.User) models.User
	EditUser(ctx context.Context, userID int64, request models.EditUserRequest) (models.User, error)
}

// BookmarkService exposes CRUD over bookmarks scoped to their owner.
type BookmarkService interface {
	GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)
	GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)
	CreateBookmark(ctx context.Context, userID int64, request models.CreateBookmarkRequest) (models.Bookmark, error)
	EditBookmarkByID(ctx context.Context, userID, bookmarkID int64, request models.EditBookmarkRequest) (models.Bookmark, error)
	DeleteBookmarkByID(ctx context.Context, userID, bookmarkID int64) error
}

// AppInfoService reports static information about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// UserServiceWrapper defines middleware composition for UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// BookmarkServiceWrapper defines middleware composition for BookmarkService.
type BookmarkServiceWrapper interface {
	Wrap(BookmarkService) BookmarkService
}
