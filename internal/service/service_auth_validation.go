// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resto-reviews/internal/validators"
	"github.com/MKhiriev/resto-reviews/models"
)

// AuthValidationService rejects malformed credentials before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during registration validation: %w", err)
	}
	return v.inner.RegisterUser(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during login validation: %w", err)
	}
	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) AdminLogin(ctx context.Context, request models.AdminLoginRequest) (models.AdminIdentity, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AdminIdentity{}, fmt.Errorf("error during admin login validation: %w", err)
	}
	return v.inner.AdminLogin(ctx, request)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	return v.inner.CreateToken(ctx, identity)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) CurrentUser(ctx context.Context, caller models.UserIdentity) (models.User, error) {
	return v.inner.CurrentUser(ctx, caller)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
