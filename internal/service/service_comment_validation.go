// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resto-reviews/internal/validators"
	"github.com/MKhiriev/resto-reviews/models"
)

type CommentValidationService struct {
	inner     CommentService
	validator validators.Validator
}

func NewCommentValidationService(validator validators.Validator) CommentServiceWrapper {
	return &CommentValidationService{validator: validator}
}

func (v *CommentValidationService) ListRestaurantComments(ctx context.Context, restaurantID int64) ([]models.Comment, error) {
	return v.inner.ListRestaurantComments(ctx, restaurantID)
}

func (v *CommentValidationService) CreateComment(ctx context.Context, caller models.UserIdentity, restaurantID int64, request models.CommentRequest) (models.Comment, []models.Comment, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Comment{}, nil, fmt.Errorf("error during comment validation before saving: %w", err)
	}
	return v.inner.CreateComment(ctx, caller, restaurantID, request)
}

// UpdateComment validates only the text. The rating is fixed at creation and
// an edit never persists it.
func (v *CommentValidationService) UpdateComment(ctx context.Context, caller models.UserIdentity, id int64, request models.CommentRequest) (models.Comment, error) {
	if err := v.validator.Validate(ctx, request, validators.FieldText); err != nil {
		return models.Comment{}, fmt.Errorf("error during comment validation before updating: %w", err)
	}
	return v.inner.UpdateComment(ctx, caller, id, request)
}

func (v *CommentValidationService) DeleteComment(ctx context.Context, caller models.UserIdentity, id int64) error {
	return v.inner.DeleteComment(ctx, caller, id)
}

func (v *CommentValidationService) ListUserComments(ctx context.Context, caller models.UserIdentity, userID int64) ([]models.Comment, error) {
	return v.inner.ListUserComments(ctx, caller, userID)
}

func (v *CommentValidationService) Wrap(inner CommentService) CommentService {
	v.inner = inner
	return v
}
