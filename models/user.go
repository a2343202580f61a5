// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// PasswordHash is a bcrypt digest and is never serialized.
type User struct {
	// ID is assigned by the repository on creation.
	ID int64 `json:"id"`

	// Username is unique across all users.
	Username string `json:"username"`

	// Email is unique across all users and is used to log in.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the representation of u sent to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// Identity returns the principal a token issued for u carries.
func (u User) Identity() UserIdentity {
	return UserIdentity{UserID: u.ID, Username: u.Username, Email: u.Email}
}

// PublicUser is the user shape embedded in authentication responses.
type PublicUser struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}
