// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenResponse is returned by signup and signin.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	// StatusCode duplicates the HTTP status for clients that only read bodies.
	StatusCode int `json:"statusCode"`

	// Message is a short human-readable description of the failure.
	Message string `json:"message"`

	// Error is the canonical status text (e.g. "Not Found").
	Error string `json:"error"`

	// Details lists individual validation failures, if any.
	Details []string `json:"details,omitempty"`
}
