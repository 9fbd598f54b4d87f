// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Bookmark is a saved link that always belongs to exactly one user.
type Bookmark struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Title is the display name of the bookmark.
	Title string `json:"title"`

	// Description is optional free text, null when absent.
	Description *string `json:"description"`

	// Link is the bookmarked URL as provided by the user.
	Link string `json:"link"`

	// UserID is the owner of the bookmark.
	UserID int64 `json:"userId"`
}

// TableName returns the name of the database table
// associated with the Bookmark model.
func (b Bookmark) TableName() string {
	return "bookmarks"
}

// BookmarkUpdate describes a partial bookmark update.
// Only non-nil fields are written. Description can also be cleared with
// an explicit null.
type BookmarkUpdate struct {
	Title       *string
	Description NullableString
	Link        *string
}
