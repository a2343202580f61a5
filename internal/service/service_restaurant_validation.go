// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resto-reviews/internal/validators"
	"github.com/MKhiriev/resto-reviews/models"
)

type RestaurantValidationService struct {
	inner     RestaurantService
	validator validators.Validator
}

func NewRestaurantValidationService(validator validators.Validator) RestaurantServiceWrapper {
	return &RestaurantValidationService{validator: validator}
}

func (v *RestaurantValidationService) ListRestaurants(ctx context.Context) ([]models.RestaurantView, error) {
	return v.inner.ListRestaurants(ctx)
}

func (v *RestaurantValidationService) GetRestaurant(ctx context.Context, id int64) (models.RestaurantView, error) {
	return v.inner.GetRestaurant(ctx, id)
}

func (v *RestaurantValidationService) CreateRestaurant(ctx context.Context, caller models.UserIdentity, request models.RestaurantRequest) (models.Restaurant, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Restaurant{}, fmt.Errorf("error during restaurant validation before saving: %w", err)
	}
	return v.inner.CreateRestaurant(ctx, caller, request)
}

func (v *RestaurantValidationService) UpdateRestaurant(ctx context.Context, caller models.UserIdentity, id int64, request models.RestaurantRequest) (models.Restaurant, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Restaurant{}, fmt.Errorf("error during restaurant validation before updating: %w", err)
	}
	return v.inner.UpdateRestaurant(ctx, caller, id, request)
}

func (v *RestaurantValidationService) DeleteRestaurant(ctx context.Context, caller models.UserIdentity, id int64) error {
	return v.inner.DeleteRestaurant(ctx, caller, id)
}

func (v *RestaurantValidationService) ListUserRestaurants(ctx context.Context, caller models.UserIdentity, userID int64) ([]models.Restaurant, error) {
	return v.inner.ListUserRestaurants(ctx, caller, userID)
}

func (v *RestaurantValidationService) Wrap(inner RestaurantService) RestaurantService {
	v.inner = inner
	return v
}
