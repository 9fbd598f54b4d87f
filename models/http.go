// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthRequest is the body of both signup and signin requests.
type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// EditUserRequest carries optional profile fields.
// Absent JSON keys leave the stored value untouched, a null name clears it.
type EditUserRequest struct {
	FirstName NullableString `json:"firstName"`
	LastName  NullableString `json:"lastName"`
	Email     *string `json:"email" validate:"omitnil,email"`
}

// ToUpdate converts the request into a store-level partial update.
func (r EditUserRequest) ToUpdate() UserUpdate {
	return UserUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// CreateBookmarkRequest is the body of POST /bookmarks.
type CreateBookmarkRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Link        string  `json:"link" validate:"required"`
}

// ToBookmark builds a new bookmark owned by userID.
func (r CreateBookmarkRequest) ToBookmark(userID int64) Bookmark {
	return Bookmark{
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
		UserID:      userID,
	}
}

// EditBookmarkRequest is the body of PATCH /bookmarks/{id}.
// Provided title and link must not be blank, a null description clears it.
type EditBookmarkRequest struct {
	Title       *string        `json:"title" validate:"omitnil,min=1"`
	Description NullableString `json:"description"`
	Link        *string `json:"link" validate:"omitnil,min=1"`
}

// ToUpdate converts the request into a store-level partial update.
func (r EditBookmarkRequest) ToUpdate() BookmarkUpdate {
	return BookmarkUpdate{
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
	}
}
