// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials is returned for any failed login. It does not
	// reveal whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired token")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrUnauthenticated is returned when an operation needs a caller but the
	// request carries none.
	ErrUnauthenticated = errors.New("missing token")

	// ErrForbidden is returned when the caller may not act on the resource.
	ErrForbidden = errors.New("forbidden")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrStorageUnavailable is returned by health checks when the storage
	// backend does not answer.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
