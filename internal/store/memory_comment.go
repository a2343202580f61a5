// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/resto-reviews/models"
)

type memoryCommentRepository struct {
	mu       sync.RWMutex
	lastID   int64
	comments []models.Comment
}

func NewMemoryCommentRepository() CommentRepository {
	return &memoryCommentRepository{}
}

func (m *memoryCommentRepository) CreateComment(_ context.Context, comment models.Comment) (models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	comment.ID = m.lastID
	m.comments = append(m.comments, comment)

	return comment, nil
}

func (m *memoryCommentRepository) FindComment(_ context.Context, id int64) (models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return models.Comment{}, ErrCommentNotFound
	}
	return m.comments[i], nil
}

func (m *memoryCommentRepository) ListComments(_ context.Context, filter models.CommentFilter) ([]models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Comment, 0)
	for _, comment := range m.comments {
		if filter.RestaurantID != nil && comment.RestaurantID != *filter.RestaurantID {
			continue
		}
		if filter.UserID != nil && comment.UserID != *filter.UserID {
			continue
		}
		result = append(result, comment)
	}
	return result, nil
}

func (m *memoryCommentRepository) UpdateCommentText(_ context.Context, id int64, text string) (models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return models.Comment{}, ErrCommentNotFound
	}
	m.comments[i].Text = text

	return m.comments[i], nil
}

func (m *memoryCommentRepository) DeleteComment(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrCommentNotFound
	}
	m.comments = slices.Delete(m.comments, i, i+1)

	return nil
}

func (m *memoryCommentRepository) DeleteCommentsByRestaurant(_ context.Context, restaurantID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.comments = slices.DeleteFunc(m.comments, func(c models.Comment) bool {
		return c.RestaurantID == restaurantID
	})
	return nil
}

func (m *memoryCommentRepository) RatingStats(_ context.Context, restaurantIDs ...int64) (map[int64]models.RatingStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[int64]models.RatingStats)
	for _, comment := range m.comments {
		if len(restaurantIDs) > 0 && !slices.Contains(restaurantIDs, comment.RestaurantID) {
			continue
		}
		s := stats[comment.RestaurantID]
		s.Add(comment.Rating)
		stats[comment.RestaurantID] = s
	}
	return stats, nil
}

// indexOf must be called with mu held.
func (m *memoryCommentRepository) indexOf(id int64) int {
	return slices.IndexFunc(m.comments, func(c models.Comment) bool { return c.ID == id })
}
