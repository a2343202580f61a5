// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RoleAdmin is the role claim carried by administrator tokens.
const RoleAdmin = "admin"

// Identity is the authenticated principal attached to a request.
//
// The set of implementations is closed: [UserIdentity] and [AdminIdentity].
type Identity interface {
	// Subject returns a human-readable name for logs.
	Subject() string
	isIdentity()
}

// UserIdentity is a registered user authenticated by a token.
type UserIdentity struct {
	UserID   int64
	Username string
	Email    string
}

func (u UserIdentity) Subject() string { return u.Username }
func (UserIdentity) isIdentity()       {}

// AdminIdentity is the administrator configured for the deployment.
type AdminIdentity struct {
	Username string
}

func (a AdminIdentity) Subject() string { return a.Username }
func (AdminIdentity) isIdentity()       {}

// PublicIdentity returns the user shape sent back with a freshly issued token.
func PublicIdentity(identity Identity) PublicUser {
	switch id := identity.(type) {
	case UserIdentity:
		return PublicUser{ID: id.UserID, Username: id.Username, Email: id.Email}
	case AdminIdentity:
		return PublicUser{Username: id.Username, Role: RoleAdmin}
	default:
		return PublicUser{}
	}
}
