// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the application.
//
// It owns routing, the authorization gate, request decoding and the single
// error envelope every failed request is answered with:
//
//	{"success": false, "error": {"status": 404, "message": "restaurant not found"}}
//
// Business rules live in the service layer; handlers only translate between
// HTTP and service calls.
package http
