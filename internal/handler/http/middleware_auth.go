// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, resolves
// it to a user via [service.AuthService.Authenticate] and stores that user
// (and its ID) in the request context before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header is not of the form "Bearer <token>";
//   - the token is expired, forged or issued to a user that no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Int64("user_id", user.ID).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, &user)))
	})
}

// currentUser returns the user stored by auth.
func currentUser(r *http.Request) (*models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return nil, ErrNoUserInContext
	}
	return user, nil
}

// currentUserID returns the ID of the user stored by auth.
func currentUserID(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoUserInContext
	}
	return userID, nil
}
