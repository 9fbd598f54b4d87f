// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUserNoLongerExists      = errors.New("user no longer exists")

	ErrForbiddenBookmarkAccess = errors.New("access to bookmark is forbidden")
	ErrInvalidBookmarkID       = errors.New("invalid bookmark id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
