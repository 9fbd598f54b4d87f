// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements the Validator interface for the inbound
// request DTOs of the models package using struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator that reports field names by their
// JSON tag.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate checks value against its struct tags.
func (v *RequestValidator) Validate(ctx context.Context, value any) error {
	switch value := value.(type) {
	case models.AuthRequest, *models.AuthRequest,
		models.EditUserRequest, *models.EditUserRequest,
		models.CreateBookmarkRequest, *models.CreateBookmarkRequest,
		models.EditBookmarkRequest, *models.EditBookmarkRequest:
		return v.validateStruct(ctx, value)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, value any) error {
	if reflect.ValueOf(value).Kind() == reflect.Pointer && reflect.ValueOf(value).IsNil() {
		return &ValidationError{Details: []string{"request body is required"}}
	}

	err := v.validate.StructCtx(ctx, value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating request: %w", err)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, describe(fieldErr))
	}

	return &ValidationError{Details: details}
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return field + " should not be empty"
	case "email":
		return field + " must be an email"
	case "min":
		return field + " must be at least " + fieldErr.Param() + " characters long"
	case "max":
		return field + " must be at most " + fieldErr.Param() + " characters long"
	default:
		return field + " is invalid"
	}
}
