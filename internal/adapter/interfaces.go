// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the restaurant review REST API.
//
// [NewHTTPAPIClient] returns an [APIClient] backed by resty. Error envelopes
// returned by the server are decoded into [*APIError], which unwraps to the
// sentinel errors in errors.go so callers can branch with [errors.Is]
// (e.g. [ErrForbidden] for 403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/resto-reviews/models"
)

// APIClient defines the calls a consumer of the REST API can make.
// Authenticated calls carry the token stored by SetToken, which Register,
// Login and AdminLogin set on success.
type APIClient interface {
	SetToken(token string)
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	AdminLogin(ctx context.Context, req models.AdminLoginRequest) (models.AuthResponse, error)
	// Me returns the account behind the stored user token.
	Me(ctx context.Context) (models.PublicUser, error)

	ListRestaurants(ctx context.Context) ([]models.RestaurantView, error)
	GetRestaurant(ctx context.Context, id int64) (models.RestaurantView, error)
	CreateRestaurant(ctx context.Context, req models.RestaurantRequest) (models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int64, req models.RestaurantRequest) (models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int64) error

	ListComments(ctx context.Context, restaurantID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, restaurantID int64, req models.CommentRequest) (models.CommentCreatedResponse, error)
	UpdateComment(ctx context.Context, id int64, req models.CommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error

	ListUserComments(ctx context.Context, userID int64) ([]models.Comment, error)
	ListUserRestaurants(ctx context.Context, userID int64) ([]models.Restaurant, error)

	SubmitLead(ctx context.Context, req models.LeadRequest) (models.Lead, error)
	ListLeads(ctx context.Context) ([]models.Lead, error)

	// Health returns nil when the server reports status "ok".
	Health(ctx context.Context) error
	Version(ctx context.Context) (string, error)
}
