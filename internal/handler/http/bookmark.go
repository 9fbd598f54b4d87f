// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/models"
)

func (h *Handler) getBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookmarks, err := h.services.BookmarkService.GetBookmarks(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}

	utils.WriteJSON(w, bookmarks, http.StatusOK)
}

func (h *Handler) getBookmarkByID(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookmarkID, err := bookmarkIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookmark, err := h.services.BookmarkService.GetBookmarkByID(r.Context(), userID, bookmarkID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, bookmark, http.StatusOK)
}

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CreateBookmarkRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	bookmark, err := h.services.BookmarkService.CreateBookmark(r.Context(), userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, bookmark, http.StatusCreated)
}

func (h *Handler) editBookmarkByID(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookmarkID, err := bookmarkIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.EditBookmarkRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	bookmark, err := h.services.BookmarkService.EditBookmarkByID(r.Context(), userID, bookmarkID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, bookmark, http.StatusOK)
}

func (h *Handler) deleteBookmarkByID(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookmarkID, err := bookmarkIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.BookmarkService.DeleteBookmarkByID(r.Context(), userID, bookmarkID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
