// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request payloads accepted by the REST API. The `validate` tags are
// evaluated by the request validator before any service logic runs.
// Passwords carry maxbytes=72, the bcrypt input limit.

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=100,maxbytes=72"`
	Email    string `json:"email" validate:"required,email,max=100"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100,maxbytes=72"`
}

// AdminLoginRequest is the body of POST /auth/admin/login.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100,maxbytes=72"`
}

// MaxImageLength bounds the opaque image string (URL or data URI).
const MaxImageLength = 10 << 20

// RestaurantRequest is the body of POST and PUT /restaurants.
// Nil optional fields keep their current value on update.
type RestaurantRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Address      string   `json:"address" validate:"required,max=200"`
	Cuisine      *string  `json:"cuisine" validate:"omitempty,max=50"`
	Phone        *string  `json:"phone" validate:"omitempty,max=20"`
	Image        *string  `json:"image" validate:"omitempty,max=10485760"`
	OpeningHours *string  `json:"openingHours" validate:"omitempty,max=100"`
	Description  *string  `json:"description" validate:"omitempty,max=1000"`
	Lat          *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng          *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
}

// CommentRequest is the body of POST /restaurants/{id}/comments and
// PUT /comments/{id}.
type CommentRequest struct {
	Text   string `json:"text" validate:"required,max=500"`
	Rating *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

// LeadRequest is the body of POST /fanfan/leads.
type LeadRequest struct {
	ID        string  `json:"id" validate:"omitempty,max=255"`
	Nombre    string  `json:"nombre" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	Telefono  string  `json:"telefono" validate:"omitempty,max=20"`
	Mensaje   string  `json:"mensaje" validate:"omitempty,max=1000"`
	Tipo      string  `json:"tipo" validate:"required,max=50"`
	Codigo    *string `json:"codigo" validate:"omitempty,max=50"`
	Descuento *string `json:"descuento" validate:"omitempty,max=10"`
}

// RestaurantFilter selects restaurants. Zero fields match everything.
type RestaurantFilter struct {
	OwnerID *int64
}

// CommentFilter selects comments. Zero fields match everything.
type CommentFilter struct {
	RestaurantID *int64
	UserID       *int64
}
