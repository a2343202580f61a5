// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/resto-reviews/models"
)

type memoryLeadRepository struct {
	mu    sync.RWMutex
	leads []models.Lead
}

func NewMemoryLeadRepository() LeadRepository {
	return &memoryLeadRepository{}
}

func (m *memoryLeadRepository) CreateLead(_ context.Context, lead models.Lead) (models.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if slices.ContainsFunc(m.leads, func(l models.Lead) bool { return l.ID == lead.ID }) {
		return models.Lead{}, ErrLeadAlreadyExists
	}
	m.leads = append(m.leads, lead)

	return lead, nil
}

func (m *memoryLeadRepository) ListLeads(_ context.Context) ([]models.Lead, error) {
	m.mu.RLock()
	leads := slices.Clone(m.leads)
	m.mu.RUnlock()

	// newest first; leads stored in the same instant keep reverse insertion order
	slices.Reverse(leads)
	slices.SortStableFunc(leads, func(a, b models.Lead) int {
		return b.Fecha.Compare(a.Fecha)
	})
	if leads == nil {
		leads = make([]models.Lead, 0)
	}
	return leads, nil
}
