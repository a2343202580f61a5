// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/resto-reviews/models"
)

type memoryRestaurantRepository struct {
	mu          sync.RWMutex
	lastID      int64
	restaurants []models.Restaurant
}

func NewMemoryRestaurantRepository() RestaurantRepository {
	return &memoryRestaurantRepository{}
}

func (m *memoryRestaurantRepository) CreateRestaurant(_ context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	restaurant.ID = m.lastID
	m.restaurants = append(m.restaurants, restaurant)

	return restaurant, nil
}

func (m *memoryRestaurantRepository) FindRestaurant(_ context.Context, id int64) (models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	return m.restaurants[i], nil
}

func (m *memoryRestaurantRepository) ListRestaurants(_ context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Restaurant, 0, len(m.restaurants))
	for _, restaurant := range m.restaurants {
		if filter.OwnerID != nil && !restaurant.IsOwnedBy(*filter.OwnerID) {
			continue
		}
		result = append(result, restaurant)
	}
	return result, nil
}

func (m *memoryRestaurantRepository) UpdateRestaurant(_ context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(restaurant.ID)
	if i < 0 {
		return models.Restaurant{}, ErrRestaurantNotFound
	}

	restaurant.OwnerID = m.restaurants[i].OwnerID
	m.restaurants[i] = restaurant

	return restaurant, nil
}

func (m *memoryRestaurantRepository) DeleteRestaurant(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrRestaurantNotFound
	}
	m.restaurants = slices.Delete(m.restaurants, i, i+1)

	return nil
}

// indexOf must be called with mu held.
func (m *memoryRestaurantRepository) indexOf(id int64) int {
	return slices.IndexFunc(m.restaurants, func(r models.Restaurant) bool { return r.ID == id })
}
