// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bookmark-keeper/internal/service"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: &validators.ValidationError{Details: []string{"x"}}, want: http.StatusBadRequest},
		{name: "invalid JSON", err: fmt.Errorf("%w: eof", ErrInvalidJSON), want: http.StatusBadRequest},
		{name: "invalid data", err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{name: "invalid bookmark id", err: service.ErrInvalidBookmarkID, want: http.StatusBadRequest},
		{name: "missing header", err: ErrEmptyAuthorizationHeader, want: http.StatusUnauthorized},
		{name: "malformed header", err: utils.ErrInvalidAuthorizationHeader, want: http.StatusUnauthorized},
		{name: "invalid credentials", err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "expired token", err: service.ErrTokenIsExpired, want: http.StatusUnauthorized},
		{name: "invalid token", err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "user gone", err: service.ErrUserNoLongerExists, want: http.StatusUnauthorized},
		{name: "forbidden", err: service.ErrForbiddenBookmarkAccess, want: http.StatusForbidden},
		{name: "bookmark not found", err: store.ErrBookmarkNotFound, want: http.StatusNotFound},
		{name: "user not found", err: store.ErrNoUserWasFound, want: http.StatusNotFound},
		{name: "email taken", err: store.ErrEmailAlreadyExists, want: http.StatusConflict},
		{
			name: "wrapped store error",
			err:  fmt.Errorf("bookmark search ended with error: %w", store.ErrBookmarkNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "low-level error",
			err:  fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("conn reset")),
			want: http.StatusInternalServerError,
		},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := classifyError(tt.err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestWriteError_Body(t *testing.T) {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	rec := httptest.NewRecorder()

	writeError(rec, req, fmt.Errorf("edit failed: %w", service.ErrForbiddenBookmarkAccess))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t,
		`{"statusCode":403,"message":"access to bookmark is forbidden","error":"Forbidden"}`,
		rec.Body.String())
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	rec := httptest.NewRecorder()

	writeError(rec, req, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
	assert.JSONEq(t,
		`{"statusCode":500,"message":"internal server error","error":"Internal Server Error"}`,
		rec.Body.String())
}
