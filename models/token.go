// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by access tokens.
//
// The "sub" claim holds the user ID in base-10, Email mirrors the user's
// email at issuance time.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the private "email" claim.
	Email string `json:"email"`
}

// UserID parses the "sub" claim as a base-10 int64.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (c *TokenClaims) UserID() (int64, error) {
	subject, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if subject == "" {
		return 0, fmt.Errorf("error extracting UserID from token: empty subject")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Email is the value of the "email" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
