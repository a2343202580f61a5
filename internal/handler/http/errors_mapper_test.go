// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/resto-reviews/internal/crypto"
	"github.com/MKhiriev/resto-reviews/internal/service"
	"github.com/MKhiriev/resto-reviews/internal/store"
	"github.com/MKhiriev/resto-reviews/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", validators.NewValidationError("name", "name is required"), http.StatusBadRequest, "name is required"},
		{"wrapped validation", fmt.Errorf("while saving: %w", validators.NewValidationError("rating", "rating must be at most 5")), http.StatusBadRequest, "rating must be at most 5"},
		{"invalid json", errInvalidJSONBody, http.StatusBadRequest, "invalid JSON body"},
		{"invalid id", errInvalidID, http.StatusBadRequest, "invalid id"},
		{"duplicate email", fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), http.StatusBadRequest, "email already registered"},
		{"password over bcrypt limit", fmt.Errorf("password hashing failed: %w", crypto.ErrPasswordTooLong), http.StatusBadRequest, "password is too long"},
		{"duplicate username", store.ErrUsernameAlreadyExists, http.StatusBadRequest, "username already exists"},
		{"duplicate lead", store.ErrLeadAlreadyExists, http.StatusBadRequest, "lead already exists"},
		{"missing token", service.ErrUnauthenticated, http.StatusUnauthorized, "missing token"},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "invalid or expired token"},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"restaurant not found", fmt.Errorf("error finding restaurant 3: %w", store.ErrRestaurantNotFound), http.StatusNotFound, "restaurant not found"},
		{"comment not found", store.ErrCommentNotFound, http.StatusNotFound, "comment not found"},
		{"sql failure hides details", fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("connection refused")), http.StatusInternalServerError, "internal server error"},
		{"storage down", fmt.Errorf("%w: %w", service.ErrStorageUnavailable, errors.New("connection refused")), http.StatusServiceUnavailable, "storage unavailable"},
		{"storage ping deadline", fmt.Errorf("%w: %w", service.ErrStorageUnavailable, context.DeadlineExceeded), http.StatusServiceUnavailable, "storage unavailable"},
		{"request deadline", fmt.Errorf("error listing restaurants: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "request timed out"},
		{"request timeout", ErrRequestTimeout, http.StatusGatewayTimeout, "request timed out"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, service.ErrForbidden)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":{"status":403,"message":"forbidden"}}`, rec.Body.String())
}
