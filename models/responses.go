// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// CommentCreatedResponse is returned after a comment is posted: the new
// comment and the full comment list of its restaurant.
type CommentCreatedResponse struct {
	Created  Comment   `json:"created"`
	Comments []Comment `json:"comments"`
}

// DeletedResponse acknowledges a restaurant deletion.
type DeletedResponse struct {
	OK bool `json:"ok"`
}

// LeadCreatedResponse is returned by POST /fanfan/leads.
type LeadCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Lead    Lead   `json:"lead"`
}

// LeadListResponse is returned by GET /fanfan/leads.
type LeadListResponse struct {
	Success bool   `json:"success"`
	Leads   []Lead `json:"leads"`
	Total   int    `json:"total"`
}

// ErrorBody is the inner object of an error response.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
