// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/bookmark-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the exact email or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with userID or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies the non-nil fields of update, bumps updated_at and
	// returns the stored row.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
}

// BookmarkRepository persists bookmarks. Methods with "User" in their name
// are scoped to the owner and treat foreign rows as absent.
type BookmarkRepository interface {
	GetUserBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)
	GetUserBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)

	// GetBookmarkByID looks a bookmark up regardless of its owner. It is
	// used to tell a foreign bookmark apart from a missing one.
	GetBookmarkByID(ctx context.Context, bookmarkID int64) (models.Bookmark, error)

	CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	UpdateUserBookmark(ctx context.Context, userID, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error)
	DeleteUserBookmark(ctx context.Context, userID, bookmarkID int64) error
}
