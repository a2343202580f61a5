// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/resto-reviews/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser stores a new user and returns it with the assigned id.
	// Returns [ErrUsernameAlreadyExists] or [ErrEmailAlreadyExists] on
	// uniqueness violations.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] if no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns [ErrUserNotFound] if no user has the id.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// RestaurantRepository persists restaurants.
type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	// FindRestaurant returns [ErrRestaurantNotFound] if no restaurant has the id.
	FindRestaurant(ctx context.Context, id int64) (models.Restaurant, error)
	// ListRestaurants returns matching restaurants ordered by id.
	ListRestaurants(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error)
	// UpdateRestaurant overwrites every editable field of the restaurant
	// identified by restaurant.ID. The owner is never changed.
	UpdateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int64) error
}

// CommentRepository persists comments and computes their rating aggregates.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	// FindComment returns [ErrCommentNotFound] if no comment has the id.
	FindComment(ctx context.Context, id int64) (models.Comment, error)
	// ListComments returns matching comments in creation order.
	ListComments(ctx context.Context, filter models.CommentFilter) ([]models.Comment, error)
	// UpdateCommentText replaces the text of a comment. Rating and authorship
	// are kept.
	UpdateCommentText(ctx context.Context, id int64, text string) (models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	// DeleteCommentsByRestaurant removes every comment of the restaurant. It
	// is not an error if there are none.
	DeleteCommentsByRestaurant(ctx context.Context, restaurantID int64) error
	// RatingStats returns per-restaurant aggregates. With no ids it returns
	// stats for every restaurant that has comments. Restaurants without
	// comments are absent from the result.
	RatingStats(ctx context.Context, restaurantIDs ...int64) (map[int64]models.RatingStats, error)
}

// LeadRepository persists marketing leads.
type LeadRepository interface {
	// CreateLead returns [ErrLeadAlreadyExists] if the id is taken.
	CreateLead(ctx context.Context, lead models.Lead) (models.Lead, error)
	// ListLeads returns every lead, newest first.
	ListLeads(ctx context.Context) ([]models.Lead, error)
}
