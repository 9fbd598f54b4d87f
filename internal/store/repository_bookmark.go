// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/models"
)

// bookmarkRepository is the SQL-backed implementation of
// [BookmarkRepository] over the "bookmarks" table.
type bookmarkRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by the
// provided database connection and logger.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		DB:     db,
		logger: logger,
	}
}

// GetUserBookmarks returns every bookmark owned by userID ordered by id.
// Returns an empty slice when the user has none.
func (b *bookmarkRepository) GetUserBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.buildSelectBookmarksQuery(userID, 0)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.GetUserBookmarks").Msg("failed to build query")
		return nil, err
	}

	var bookmarks []models.Bookmark
	err = b.withRetry(ctx, func(ctx context.Context) error {
		var queryErr error
		bookmarks, queryErr = b.queryBookmarks(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*bookmarkRepository.GetUserBookmarks").
			Int64("user_id", userID).
			Msg("failed to get user bookmarks")
		return nil, err
	}

	return bookmarks, nil
}

func (b *bookmarkRepository) queryBookmarks(ctx context.Context, query string, args ...any) ([]models.Bookmark, error) {
	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0, 16)
	for rows.Next() {
		var bookmark models.Bookmark
		if err := scanBookmark(rows, &bookmark); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		bookmarks = append(bookmarks, bookmark)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookmarks, nil
}

// GetUserBookmarkByID returns the bookmark only when it belongs to userID,
// otherwise [ErrBookmarkNotFound].
func (b *bookmarkRepository) GetUserBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	return b.getBookmark(ctx, "*bookmarkRepository.GetUserBookmarkByID", userID, bookmarkID)
}

// GetBookmarkByID returns the bookmark regardless of its owner.
func (b *bookmarkRepository) GetBookmarkByID(ctx context.Context, bookmarkID int64) (models.Bookmark, error) {
	return b.getBookmark(ctx, "*bookmarkRepository.GetBookmarkByID", 0, bookmarkID)
}

func (b *bookmarkRepository) getBookmark(ctx context.Context, funcName string, userID, bookmarkID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.buildSelectBookmarksQuery(userID, bookmarkID)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.Bookmark{}, err
	}

	var bookmark models.Bookmark
	err = b.withRetry(ctx, func(ctx context.Context) error {
		return scanBookmark(b.DB.QueryRowContext(ctx, query, args...), &bookmark)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}
		log.Err(err).
			Str("func", funcName).
			Int64("bookmark_id", bookmarkID).
			Msg("failed to get bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return bookmark, nil
}

// CreateBookmark inserts bookmark and returns the stored row.
// An unknown owner yields [ErrNoUserWasFound].
func (b *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.buildInsertBookmarkQuery(bookmark)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Msg("failed to build query")
		return models.Bookmark{}, err
	}

	var bookmarkID int64
	err = b.withRetry(ctx, func(ctx context.Context) error {
		return b.DB.QueryRowContext(ctx, query, args...).Scan(&bookmarkID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*bookmarkRepository.CreateBookmark").
			Int64("user_id", bookmark.UserID).
			Msg("failed to insert bookmark")
		if isForeignKeyViolation(err) {
			return models.Bookmark{}, ErrNoUserWasFound
		}
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return b.GetUserBookmarkByID(ctx, bookmark.UserID, bookmarkID)
}

// UpdateUserBookmark writes the non-nil fields of update to a bookmark owned
// by userID and returns the refreshed row. [ErrBookmarkNotFound] is returned
// when no owned row matched.
func (b *bookmarkRepository) UpdateUserBookmark(ctx context.Context, userID, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.buildUpdateBookmarkQuery(userID, bookmarkID, update)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.UpdateUserBookmark").Msg("failed to build query")
		return models.Bookmark{}, err
	}

	if err = b.execAffectingOne(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*bookmarkRepository.UpdateUserBookmark").
			Int64("user_id", userID).
			Int64("bookmark_id", bookmarkID).
			Msg("failed to update bookmark")
		return models.Bookmark{}, err
	}

	return b.GetUserBookmarkByID(ctx, userID, bookmarkID)
}

// DeleteUserBookmark hard-deletes a bookmark owned by userID.
// [ErrBookmarkNotFound] is returned when no owned row matched.
func (b *bookmarkRepository) DeleteUserBookmark(ctx context.Context, userID, bookmarkID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := b.buildDeleteBookmarkQuery(userID, bookmarkID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.DeleteUserBookmark").Msg("failed to build query")
		return err
	}

	if err = b.execAffectingOne(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*bookmarkRepository.DeleteUserBookmark").
			Int64("user_id", userID).
			Int64("bookmark_id", bookmarkID).
			Msg("failed to delete bookmark")
		return err
	}

	return nil
}

// execAffectingOne executes a DML statement and maps zero affected rows to
// [ErrBookmarkNotFound].
func (b *bookmarkRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	var result sql.Result
	err := b.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = b.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}
