// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/models"
)

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.services.UserService.GetMe(r.Context(), *user), http.StatusOK)
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.EditUserRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.EditUser(r.Context(), userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
