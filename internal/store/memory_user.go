// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/resto-reviews/models"
)

type memoryUserRepository struct {
	mu     sync.RWMutex
	lastID int64
	users  []models.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return models.User{}, ErrUsernameAlreadyExists
		}
	}
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	m.lastID++
	user.ID = m.lastID
	m.users = append(m.users, user)

	return user, nil
}

func (m *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (m *memoryUserRepository) FindUserByID(_ context.Context, id int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}
