// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an identity token.
//
// ID is set for registered users and absent for the administrator, whose
// tokens carry Role "admin" instead.
type Claims struct {
	ID       *int64 `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`

	jwt.RegisteredClaims
}

// NewClaims builds the identity part of the claims for identity.
func NewClaims(identity Identity) Claims {
	switch id := identity.(type) {
	case UserIdentity:
		userID := id.UserID
		return Claims{ID: &userID, Username: id.Username, Email: id.Email}
	case AdminIdentity:
		return Claims{Username: id.Username, Role: RoleAdmin}
	default:
		return Claims{}
	}
}

// Identity converts verified claims back into the principal they describe.
func (c Claims) Identity() (Identity, error) {
	switch {
	case c.Role == RoleAdmin:
		return AdminIdentity{Username: c.Username}, nil
	case c.ID != nil && c.Role == "":
		return UserIdentity{UserID: *c.ID, Username: c.Username, Email: c.Email}, nil
	default:
		return nil, fmt.Errorf("claims describe no known identity (role %q)", c.Role)
	}
}

// Token is a signed identity token together with the principal it was issued
// for.
type Token struct {
	// SignedString is the compact JWS form sent to clients.
	SignedString string `json:"-"`

	// Identity is the principal encoded in the token.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
