// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/store"
	"github.com/MKhiriev/resto-reviews/internal/utils"
	"github.com/MKhiriev/resto-reviews/models"
)

// IDGenerator produces lead identifiers.
type IDGenerator interface {
	Generate() string
}

type leadService struct {
	leads store.LeadRepository
	ids   IDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewLeadService(leads store.LeadRepository, logger *logger.Logger) LeadService {
	return &leadService{
		leads:  leads,
		ids:    utils.NewUUIDGenerator(models.LeadIDPrefix),
		now:    time.Now,
		logger: logger,
	}
}

// CreateLead stores a lead. A client supplied id is kept; otherwise one is
// generated. The timestamp is always assigned here.
func (s *leadService) CreateLead(ctx context.Context, request models.LeadRequest) (models.Lead, error) {
	id := request.ID
	if id == "" {
		id = s.ids.Generate()
	}

	lead, err := s.leads.CreateLead(ctx, models.Lead{
		ID:        id,
		Nombre:    request.Nombre,
		Email:     request.Email,
		Telefono:  request.Telefono,
		Mensaje:   request.Mensaje,
		Tipo:      request.Tipo,
		Codigo:    emptyToNil(request.Codigo),
		Descuento: emptyToNil(request.Descuento),
		Fecha:     s.now().UTC(),
	})
	if err != nil {
		return models.Lead{}, fmt.Errorf("error storing lead: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*leadService.CreateLead").
		Str("lead_id", lead.ID).
		Str("tipo", lead.Tipo).
		Msg("lead stored")
	return lead, nil
}

func (s *leadService) ListLeads(ctx context.Context) ([]models.Lead, error) {
	leads, err := s.leads.ListLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing leads: %w", err)
	}
	return leads, nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
