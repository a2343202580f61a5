// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing primitives used by the
// authentication service.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way digests and
// checks candidates against them.
type PasswordHasher interface {
	// Hash returns a salted digest of password. Two calls with the same
	// password return different digests.
	Hash(password string) (string, error)

	// Compare returns nil when password matches digest and
	// [ErrPasswordMismatch] when it does not. Any other error means the
	// digest itself is malformed.
	Compare(digest, password string) error
}
