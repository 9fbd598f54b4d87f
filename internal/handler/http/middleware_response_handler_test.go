// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{name: "201 Created", statusCodes: []int{http.StatusCreated}, expectedStatus: http.StatusCreated},
		{name: "204 No Content", statusCodes: []int{http.StatusNoContent}, expectedStatus: http.StatusNoContent},
		{name: "double call — first wins", statusCodes: []int{http.StatusAccepted, http.StatusBadRequest}, expectedStatus: http.StatusAccepted},
		{name: "triple call — first wins", statusCodes: []int{http.StatusOK, http.StatusCreated, http.StatusNotFound}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write_SetsImplicit200(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, "hello", rr.Body.String())
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusAccepted)
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusAccepted, w.status, "status must not change to 200")
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Same(t, rr, w.Unwrap())
}
