// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/resto-reviews/internal/app"
	"github.com/MKhiriev/resto-reviews/internal/validators"
)

var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when a
	// protected route is called without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrRequestBodyTooLarge is returned when a body exceeds maxRequestBodySize.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrRequestTimeout is returned when a request outlives the configured
	// request timeout.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrRouteNotFound and ErrMethodNotAllowed answer requests no route serves.
	ErrRouteNotFound    = errors.New(app.MsgRouteNotFound)
	ErrMethodNotAllowed = errors.New(app.MsgMethodNotAllowed)

	// errPanicRecovered is reported when a handler panics.
	errPanicRecovered = errors.New("panic recovered")
)

var (
	errInvalidJSONBody = validators.NewValidationError("", app.MsgInvalidJSONBody)
	errInvalidID       = validators.NewValidationError("id", app.MsgInvalidID)
)
