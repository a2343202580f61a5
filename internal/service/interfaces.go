// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/resto-reviews/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and issues identity tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	AdminLogin(ctx context.Context, request models.AdminLoginRequest) (models.AdminIdentity, error)
	CreateToken(ctx context.Context, identity models.Identity) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// CurrentUser loads the stored account behind a user token.
	CurrentUser(ctx context.Context, caller models.UserIdentity) (models.User, error)
}

// RestaurantService manages restaurants. Reads attach rating aggregates;
// mutations are restricted to the owner.
type RestaurantService interface {
	ListRestaurants(ctx context.Context) ([]models.RestaurantView, error)
	GetRestaurant(ctx context.Context, id int64) (models.RestaurantView, error)
	CreateRestaurant(ctx context.Context, caller models.UserIdentity, request models.RestaurantRequest) (models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, caller models.UserIdentity, id int64, request models.RestaurantRequest) (models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, caller models.UserIdentity, id int64) error
	ListUserRestaurants(ctx context.Context, caller models.UserIdentity, userID int64) ([]models.Restaurant, error)
}

// CommentService manages comments. Mutations are restricted to the author.
type CommentService interface {
	ListRestaurantComments(ctx context.Context, restaurantID int64) ([]models.Comment, error)
	// CreateComment returns the new comment and the full comment list of the
	// restaurant after the insert.
	CreateComment(ctx context.Context, caller models.UserIdentity, restaurantID int64, request models.CommentRequest) (models.Comment, []models.Comment, error)
	UpdateComment(ctx context.Context, caller models.UserIdentity, id int64, request models.CommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, caller models.UserIdentity, id int64) error
	ListUserComments(ctx context.Context, caller models.UserIdentity, userID int64) ([]models.Comment, error)
}

// LeadService captures marketing leads.
type LeadService interface {
	CreateLead(ctx context.Context, request models.LeadRequest) (models.Lead, error)
	ListLeads(ctx context.Context) ([]models.Lead, error)
}

// AppInfoService exposes build and deployment information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// CheckHealth returns ErrStorageUnavailable when the storage backend
	// does not answer a ping.
	CheckHealth(ctx context.Context) error
}

// Pinger is a storage backend that answers a liveness ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// RestaurantServiceWrapper defines middleware composition for RestaurantService.
type RestaurantServiceWrapper interface {
	Wrap(RestaurantService) RestaurantService
}

// CommentServiceWrapper defines middleware composition for CommentService.
type CommentServiceWrapper interface {
	Wrap(CommentService) CommentService
}

// LeadServiceWrapper defines middleware composition for LeadService.
type LeadServiceWrapper interface {
	Wrap(LeadService) LeadService
}
