// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, the HTTP client, JWT token generation and validation, and id
// generation.
package utils

import (
	"context"

	"github.com/MKhiriev/resto-reviews/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authorization gate stores the
// authenticated [models.Identity].
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the identity stored by WithIdentity.
//
// Example usage:
//
//	identity, ok := utils.GetIdentityFromContext(ctx)
//	if !ok {
//	    // request is anonymous
//	}
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok && identity != nil
}

// GetUserFromContext returns the registered user identity stored in ctx.
// ok is false for anonymous requests and for the administrator.
func GetUserFromContext(ctx context.Context) (models.UserIdentity, bool) {
	identity, ok := GetIdentityFromContext(ctx)
	if !ok {
		return models.UserIdentity{}, false
	}

	user, ok := identity.(models.UserIdentity)
	return user, ok
}
