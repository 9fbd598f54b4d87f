// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var request models.AuthRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Signup(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", token.UserID).Msg("user signed up")
	writeToken(w, token, http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	var request models.AuthRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Signin(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", token.UserID).Msg("user signed in")
	writeToken(w, token, http.StatusOK)
}

// writeToken returns the token both in the body and in the Authorization
// header.
func writeToken(w http.ResponseWriter, token models.Token, status int) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString}, status)
}
