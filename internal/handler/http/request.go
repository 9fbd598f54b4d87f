// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/bookmark-keeper/internal/service"
	"github.com/go-chi/chi/v5"
)

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched so that validation reports the missing fields.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// bookmarkIDParam parses the {id} URL parameter.
func bookmarkIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidBookmarkID, raw)
	}
	return id, nil
}
