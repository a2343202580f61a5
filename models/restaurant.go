// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// Default coordinates applied to restaurants created without a location.
const (
	DefaultLat = 40.4168
	DefaultLng = -3.7038
)

// Restaurant is a venue listed by a registered user.
// OwnerID never changes after creation.
type Restaurant struct {
	ID           int64   `json:"id"`
	OwnerID      *int64  `json:"ownerId"`
	Name         string  `json:"name"`
	Cuisine      string  `json:"cuisine"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Image        string  `json:"image"`
	OpeningHours string  `json:"openingHours"`
	Description  string  `json:"description"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

// TableName returns the name of the database table
// associated with the Restaurant model.
func (r Restaurant) TableName() string {
	return "restaurants"
}

// IsOwnedBy reports whether userID created the restaurant.
func (r Restaurant) IsOwnedBy(userID int64) bool {
	return r.OwnerID != nil && *r.OwnerID == userID
}

// RestaurantView is a restaurant enriched with the aggregates computed from
// its comments at read time.
type RestaurantView struct {
	Restaurant

	// AvgRating is the mean of rated comments rounded to one decimal,
	// or nil when no comment carries a rating.
	AvgRating *float64 `json:"avgRating"`

	// CommentCount counts all comments, rated or not.
	CommentCount int `json:"commentCount"`
}

// NewRestaurantView combines r with its rating statistics.
func NewRestaurantView(r Restaurant, stats RatingStats) RestaurantView {
	return RestaurantView{
		Restaurant:   r,
		AvgRating:    stats.AverageRating(),
		CommentCount: stats.CommentCount,
	}
}

// RatingStats aggregates the comments of one restaurant.
type RatingStats struct {
	CommentCount int
	RatedCount   int
	RatingSum    int
}

// AverageRating returns the mean rating rounded to one decimal place, or nil
// when there are no rated comments.
func (s RatingStats) AverageRating() *float64 {
	if s.RatedCount == 0 {
		return nil
	}

	avg := math.Round(float64(s.RatingSum)/float64(s.RatedCount)*10) / 10
	return &avg
}

// Add folds one comment into the statistics.
func (s *RatingStats) Add(rating *int) {
	s.CommentCount++
	if rating != nil {
		s.RatedCount++
		s.RatingSum += *rating
	}
}
