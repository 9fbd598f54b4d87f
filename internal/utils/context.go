// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, JWT token generation and validation,
// and trace identifiers.
package utils

import (
	"context"

	"github.com/MKhiriev/bookmark-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier
// in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// UserCtxKey is the key used to store the authenticated *models.User in the
// context.
var UserCtxKey = contextKey("user")

// TraceIDCtxKey is the key used to store the request trace ID.
var TraceIDCtxKey = contextKey("traceID")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUserFromContext retrieves the authenticated user stored by the auth
// middleware. A nil pointer stored under the key is reported as missing.
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// WithUser returns a copy of ctx carrying both the user and its ID.
func WithUser(ctx context.Context, user *models.User) context.Context {
	ctx = context.WithValue(ctx, UserCtxKey, user)
	return context.WithValue(ctx, UserIDCtxKey, user.ID)
}

// GetTraceIDFromContext returns the trace ID attached to ctx, or an empty
// string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
