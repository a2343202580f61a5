// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resto-reviews/internal/validators"
	"github.com/MKhiriev/resto-reviews/models"
)

type LeadValidationService struct {
	inner     LeadService
	validator validators.Validator
}

func NewLeadValidationService(validator validators.Validator) LeadServiceWrapper {
	return &LeadValidationService{validator: validator}
}

func (v *LeadValidationService) CreateLead(ctx context.Context, request models.LeadRequest) (models.Lead, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Lead{}, fmt.Errorf("error during lead validation before saving: %w", err)
	}
	return v.inner.CreateLead(ctx, request)
}

func (v *LeadValidationService) ListLeads(ctx context.Context) ([]models.Lead, error) {
	return v.inner.ListLeads(ctx)
}

func (v *LeadValidationService) Wrap(inner LeadService) LeadService {
	v.inner = inner
	return v
}
