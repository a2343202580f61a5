// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Comment is a review left by a user on a restaurant.
//
// Username is a snapshot of the author's username taken at creation time.
// RestaurantID, UserID and Rating never change after creation.
type Comment struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	UserID       int64     `json:"userId"`
	Username     string    `json:"username"`
	Text         string    `json:"text"`
	Rating       *int      `json:"rating,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
