// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/models"
)

type bookmarkService struct {
	bookmarkRepository store.BookmarkRepository

	logger *logger.Logger
}

// NewBookmarkService returns a BookmarkService backed by bookmarkRepository.
func NewBookmarkService(bookmarkRepository store.BookmarkRepository, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		bookmarkRepository: bookmarkRepository,
		logger:             logger,
	}
}

func (b *bookmarkService) GetBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	bookmarks, err := b.bookmarkRepository.GetUserBookmarks(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("bookmarks search ended with error")
		return nil, fmt.Errorf("bookmarks search ended with error: %w", err)
	}

	return bookmarks, nil
}

// GetBookmarkByID returns the bookmark only when userID owns it. Foreign
// bookmarks are reported as store.ErrBookmarkNotFound.
func (b *bookmarkService) GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	bookmark, err := b.bookmarkRepository.GetUserBookmarkByID(ctx, userID, bookmarkID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("bookmark_id", bookmarkID).
			Msg("bookmark search ended with error")
		return models.Bookmark{}, fmt.Errorf("bookmark search ended with error: %w", err)
	}

	return bookmark, nil
}

func (b *bookmarkService) CreateBookmark(ctx context.Context, userID int64, request models.CreateBookmarkRequest) (models.Bookmark, error) {
	bookmark, err := b.bookmarkRepository.CreateBookmark(ctx, request.ToBookmark(userID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("bookmark creation ended with error")
		return models.Bookmark{}, fmt.Errorf("bookmark creation ended with error: %w", err)
	}

	return bookmark, nil
}

// EditBookmarkByID applies the supplied fields to a bookmark owned by userID.
//
// Returns store.ErrBookmarkNotFound if the bookmark does not exist and
// ErrForbiddenBookmarkAccess if it belongs to another user.
func (b *bookmarkService) EditBookmarkByID(ctx context.Context, userID, bookmarkID int64, request models.EditBookmarkRequest) (models.Bookmark, error) {
	if err := b.checkOwnership(ctx, userID, bookmarkID); err != nil {
		return models.Bookmark{}, err
	}

	bookmark, err := b.bookmarkRepository.UpdateUserBookmark(ctx, userID, bookmarkID, request.ToUpdate())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("bookmark_id", bookmarkID).
			Msg("bookmark update ended with error")
		return models.Bookmark{}, fmt.Errorf("bookmark update ended with error: %w", err)
	}

	return bookmark, nil
}

// DeleteBookmarkByID removes a bookmark owned by userID. Errors follow
// EditBookmarkByID.
func (b *bookmarkService) DeleteBookmarkByID(ctx context.Context, userID, bookmarkID int64) error {
	if err := b.checkOwnership(ctx, userID, bookmarkID); err != nil {
		return err
	}

	if err := b.bookmarkRepository.DeleteUserBookmark(ctx, userID, bookmarkID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("bookmark_id", bookmarkID).
			Msg("bookmark deletion ended with error")
		return fmt.Errorf("bookmark deletion ended with error: %w", err)
	}

	return nil
}

func (b *bookmarkService) checkOwnership(ctx context.Context, userID, bookmarkID int64) error {
	log := logger.FromContext(ctx)

	bookmark, err := b.bookmarkRepository.GetBookmarkByID(ctx, bookmarkID)
	if err != nil {
		log.Err(err).Int64("bookmark_id", bookmarkID).Msg("bookmark search ended with error")
		return fmt.Errorf("bookmark search ended with error: %w", err)
	}

	if bookmark.UserID != userID {
		log.Warn().
			Int64("user_id", userID).
			Int64("owner_id", bookmark.UserID).
			Int64("bookmark_id", bookmarkID).
			Msg("attempt to modify a foreign bookmark")
		return ErrForbiddenBookmarkAccess
	}

	return nil
}
