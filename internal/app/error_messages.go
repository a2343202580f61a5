// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSONBody is returned when the request body cannot be decoded.
	MsgInvalidJSONBody = "invalid JSON body"

	// MsgInvalidID is returned when a path id is not a positive integer.
	MsgInvalidID = "invalid id"

	// MsgMissingToken is returned when a protected route is called without a
	// bearer token.
	MsgMissingToken = "missing token"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "invalid or expired token"

	// MsgInvalidCredentials is returned for every failed login, whether the
	// account exists or not.
	MsgInvalidCredentials = "invalid credentials"

	// MsgForbidden is returned when the caller is authenticated but not
	// allowed to act on the resource.
	MsgForbidden = "forbidden"

	// MsgRouteNotFound is returned for unknown routes.
	MsgRouteNotFound = "route not found"

	// MsgMethodNotAllowed is returned when the route exists but does not
	// accept the HTTP method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgLeadStored confirms a captured lead.
	MsgLeadStored = "lead stored successfully"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
