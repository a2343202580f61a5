// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/resto-reviews/internal/config"
	"github.com/MKhiriev/resto-reviews/internal/crypto"
	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/store"
	"github.com/MKhiriev/resto-reviews/internal/validators"
)

type Services struct {
	AuthService       AuthService
	RestaurantService RestaurantService
	CommentService    CommentService
	LeadService       LeadService
	AppInfoService    AppInfoService
}

// NewServices wires every service to its repositories. Services that accept
// request payloads are wrapped with a validation layer.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, hasher, cfg.App, logger)),
		RestaurantService: NewRestaurantValidationService(validator).
			Wrap(NewRestaurantService(storages.RestaurantRepository, storages.CommentRepository, logger)),
		CommentService: NewCommentValidationService(validator).
			Wrap(NewCommentService(storages.CommentRepository, storages.RestaurantRepository, logger)),
		LeadService: NewLeadValidationService(validator).
			Wrap(NewLeadService(storages.LeadRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
