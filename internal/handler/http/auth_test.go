// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/bookmark-keeper/internal/service"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/internal/validators"
	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed, UserID: 1}
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

func TestSignup_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		signupErr   error
		wantStatus  int
		wantToken   string
		wantMessage string
		wantDetails []string
	}{
		{
			name:       "success",
			body:       `{"email":"vlad@gmail.com","password":"123"}`,
			wantStatus: http.StatusCreated,
			wantToken:  "signed-token",
		},
		{
			name:        "malformed JSON",
			body:        `{"email":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: ErrInvalidJSON.Error(),
		},
		{
			name:        "validation failure",
			body:        `{}`,
			signupErr:   &validators.ValidationError{Details: []string{"email should not be empty", "password should not be empty"}},
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ErrValidation.Error(),
			wantDetails: []string{"email should not be empty", "password should not be empty"},
		},
		{
			name:        "email taken",
			body:        `{"email":"vlad@gmail.com","password":"123"}`,
			signupErr:   store.ErrEmailAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: store.ErrEmailAlreadyExists.Error(),
		},
		{
			name:        "unexpected error is hidden",
			body:        `{"email":"vlad@gmail.com","password":"123"}`,
			signupErr:   errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: msgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				signupFn: func(_ context.Context, request models.AuthRequest) (models.Token, error) {
					if tt.signupErr != nil {
						return models.Token{}, tt.signupErr
					}
					assert.Equal(t, "vlad@gmail.com", request.Email)
					assert.Equal(t, "123", request.Password)
					return stubToken(tt.wantToken), nil
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body)))
			rec := httptest.NewRecorder()
			h.signup(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantToken != "" {
				var resp models.TokenResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantToken, resp.AccessToken)
				assert.Equal(t, "Bearer "+tt.wantToken, rec.Header().Get("Authorization"))
				return
			}

			resp := decodeErrorResponse(t, rec)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, http.StatusText(tt.wantStatus), resp.Error)
			assert.Equal(t, tt.wantDetails, resp.Details)
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

// ─────────────────────────────────────────────
// signin
// ─────────────────────────────────────────────

func TestSignin_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		signinErr  error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "invalid credentials", signinErr: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "validation failure", signinErr: &validators.ValidationError{Details: []string{"email must be an email"}}, wantStatus: http.StatusBadRequest},
		{name: "invalid data", signinErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				signinFn: func(context.Context, models.AuthRequest) (models.Token, error) {
					if tt.signinErr != nil {
						return models.Token{}, tt.signinErr
					}
					return stubToken("signin-token"), nil
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			body := `{"email":"vlad@gmail.com","password":"123"}`
			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(body)))
			rec := httptest.NewRecorder()
			h.signin(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.signinErr == nil {
				assert.JSONEq(t, `{"access_token":"signin-token"}`, rec.Body.String())
				assert.Equal(t, "Bearer signin-token", rec.Header().Get("Authorization"))
			}
		})
	}
}

func TestSignin_EmptyBodyReachesValidation(t *testing.T) {
	called := false
	auth := &mockAuthService{
		signinFn: func(_ context.Context, request models.AuthRequest) (models.Token, error) {
			called = true
			assert.Equal(t, models.AuthRequest{}, request)
			return models.Token{}, &validators.ValidationError{Details: []string{"email should not be empty"}}
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/auth/signin", nil))
	rec := httptest.NewRecorder()
	h.signin(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
