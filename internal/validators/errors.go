// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrValidation      = errors.New("validation failed")
)

// ValidationError lists every failed rule of a single Validate call.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Details, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Details returns the human-readable failures carried by err, or nil when
// err is not a *ValidationError.
func Details(err error) []string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Details
	}
	return nil
}
