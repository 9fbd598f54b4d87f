// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTraceID(t *testing.T) {
	id := NewTraceID()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected UUIDv7, got v%d", parsed.Version())
	}
	if NewTraceID() == id {
		t.Error("expected unique trace IDs")
	}
}
