// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/service"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/internal/validators"
	"github.com/MKhiriev/bookmark-keeper/models"
)

const msgInternalServerError = "internal server error"

// errorStatuses is checked in order, the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{validators.ErrValidation, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidBookmarkID, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoUserInContext, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrUserNoLongerExists, http.StatusUnauthorized},

	{service.ErrForbiddenBookmarkAccess, http.StatusForbidden},

	{store.ErrBookmarkNotFound, http.StatusNotFound},
	{store.ErrNoUserWasFound, http.StatusNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
}

// classifyError returns the response status for err together with the
// sentinel it matched. Unknown errors map to 500 and a nil sentinel.
func classifyError(err error) (int, error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err and writes it as a models.ErrorResponse. Internal
// details of unexpected errors never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := classifyError(err)
	message := msgInternalServerError
	if target != nil {
		message = target.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
		Details:    validators.Details(err),
	}, status)
}
