// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrValidation matches every [*ValidationError] via errors.Is.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError describes the first rule a payload violated.
type ValidationError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Message is a human-readable description safe to return to clients.
	Message string
}

// NewValidationError returns a [*ValidationError] for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is [ErrValidation].
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
