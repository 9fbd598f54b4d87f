// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns bookmarks.
// Hash is a bcrypt digest of the password and never leaves the server.
type User struct {
	// ID is the server-assigned identifier, used as the JWT subject.
	ID int64 `json:"id"`

	// CreatedAt is the time the account was registered.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is bumped on every profile edit.
	UpdatedAt time.Time `json:"updatedAt"`

	// Email is the unique, case-sensitive login of the user.
	Email string `json:"email"`

	// Hash is the salted password hash. Excluded from JSON.
	Hash string `json:"-"`

	// FirstName is optional and serialized as null when absent.
	FirstName *string `json:"firstName"`

	// LastName is optional and serialized as null when absent.
	LastName *string `json:"lastName"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial profile update.
// Only non-nil fields are written. The name fields can also be cleared
// with an explicit null.
type UserUpdate struct {
	FirstName NullableString
	LastName  NullableString
	Email     *string
}
