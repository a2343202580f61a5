// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/resto-reviews/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func validRestaurant() models.RestaurantRequest {
	return models.RestaurantRequest{
		Name:    "Casa Lucio",
		Address: "Cava Baja 35, Madrid",
		Cuisine: strPtr("Spanish"),
		Lat:     floatPtr(40.41),
		Lng:     floatPtr(-3.70),
	}
}

func validLead() models.LeadRequest {
	return models.LeadRequest{
		Nombre: "Ana",
		Email:  "ana@example.com",
		Tipo:   "newsletter",
	}
}

func requireValidationError(t *testing.T, err error, field, message string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, field, ve.Field)
	if message != "" {
		assert.Equal(t, message, ve.Message)
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "text"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.CommentRequest)(nil)), ErrUnsupportedType)
}

func TestValidate_PointerAndValue(t *testing.T) {
	v := NewRequestValidator()
	req := models.CommentRequest{Text: "great"}

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

// ---------------------------------------------------------------------------
// Register / login
// ---------------------------------------------------------------------------

func TestValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		field   string
		message string
	}{
		{name: "valid", req: models.RegisterRequest{Username: "ana", Password: "secret", Email: "ana@x.io"}},
		{name: "missing username", req: models.RegisterRequest{Password: "secret", Email: "ana@x.io"}, field: "username", message: "username is required"},
		{name: "short username", req: models.RegisterRequest{Username: "an", Password: "secret", Email: "ana@x.io"}, field: "username", message: "username must be at least 3 characters"},
		{name: "long username", req: models.RegisterRequest{Username: strings.Repeat("a", 51), Password: "secret", Email: "ana@x.io"}, field: "username", message: "username must be at most 50 characters"},
		{name: "short password", req: models.RegisterRequest{Username: "ana", Password: "12345", Email: "ana@x.io"}, field: "password", message: "password must be at least 6 characters"},
		{name: "bad email", req: models.RegisterRequest{Username: "ana", Password: "secret", Email: "not-an-email"}, field: "email", message: "email must be a valid email address"},
		{name: "password at byte limit", req: models.RegisterRequest{Username: "ana", Password: strings.Repeat("a", 72), Email: "ana@x.io"}},
		{name: "password over byte limit", req: models.RegisterRequest{Username: "ana", Password: strings.Repeat("a", 80), Email: "ana@x.io"}, field: "password", message: "password must be at most 72 bytes"},
		{name: "multibyte password over byte limit", req: models.RegisterRequest{Username: "ana", Password: strings.Repeat("ñ", 40), Email: "ana@x.io"}, field: "password", message: "password must be at most 72 bytes"},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, tt.field, tt.message)
		})
	}
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "ana@x.io", Password: "x"}))
	requireValidationError(t, v.Validate(context.Background(), models.LoginRequest{Password: "x"}), "email", "email is required")
	requireValidationError(t, v.Validate(context.Background(),
		models.LoginRequest{Email: "ana@x.io", Password: strings.Repeat("p", 101)}), "password", "password must be at most 100 characters")
	requireValidationError(t, v.Validate(context.Background(),
		models.LoginRequest{Email: "ana@x.io", Password: strings.Repeat("p", 73)}), "password", "password must be at most 72 bytes")
}

func TestValidate_AdminLoginRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.AdminLoginRequest{Username: "admin", Password: "x"}))
	requireValidationError(t, v.Validate(context.Background(), models.AdminLoginRequest{Username: "admin"}), "password", "")
	requireValidationError(t, v.Validate(context.Background(),
		models.AdminLoginRequest{Username: "admin", Password: strings.Repeat("p", 73)}), "password", "password must be at most 72 bytes")
}

// ---------------------------------------------------------------------------
// Restaurants
// ---------------------------------------------------------------------------

func TestValidate_RestaurantRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.RestaurantRequest)
		field   string
		message string
	}{
		{name: "valid", mutate: func(r *models.RestaurantRequest) {}},
		{name: "no coordinates", mutate: func(r *models.RestaurantRequest) { r.Lat, r.Lng = nil, nil }},
		{name: "missing name", mutate: func(r *models.RestaurantRequest) { r.Name = "" }, field: "name", message: "name is required"},
		{name: "missing address", mutate: func(r *models.RestaurantRequest) { r.Address = "" }, field: "address", message: "address is required"},
		{name: "long cuisine", mutate: func(r *models.RestaurantRequest) { r.Cuisine = strPtr(strings.Repeat("c", 51)) }, field: "cuisine"},
		{name: "long phone", mutate: func(r *models.RestaurantRequest) { r.Phone = strPtr(strings.Repeat("1", 21)) }, field: "phone"},
		{name: "long description", mutate: func(r *models.RestaurantRequest) { r.Description = strPtr(strings.Repeat("d", 1001)) }, field: "description"},
		{name: "lat too high", mutate: func(r *models.RestaurantRequest) { r.Lat = floatPtr(90.5) }, field: "lat", message: "lat must be at most 90"},
		{name: "lng too low", mutate: func(r *models.RestaurantRequest) { r.Lng = floatPtr(-180.1) }, field: "lng", message: "lng must be at least -180"},
		{name: "lat boundary", mutate: func(r *models.RestaurantRequest) { r.Lat = floatPtr(-90) }},
		{name: "empty optional string", mutate: func(r *models.RestaurantRequest) { r.Phone = strPtr("") }},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRestaurant()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, tt.field, tt.message)
		})
	}
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

func TestValidate_CommentRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CommentRequest
		field   string
		message string
	}{
		{name: "text only", req: models.CommentRequest{Text: "nice"}},
		{name: "with rating", req: models.CommentRequest{Text: "nice", Rating: intPtr(5)}},
		{name: "max length", req: models.CommentRequest{Text: strings.Repeat("x", 500)}},
		{name: "empty text", req: models.CommentRequest{Text: ""}, field: "text", message: "text is required"},
		{name: "text too long", req: models.CommentRequest{Text: strings.Repeat("x", 501)}, field: "text", message: "text must be at most 500 characters"},
		{name: "rating zero", req: models.CommentRequest{Text: "x", Rating: intPtr(0)}, field: "rating", message: "rating must be at least 1"},
		{name: "rating six", req: models.CommentRequest{Text: "x", Rating: intPtr(6)}, field: "rating", message: "rating must be at most 5"},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, tt.field, tt.message)
		})
	}
}

func TestValidate_CommentRequest_Partial(t *testing.T) {
	v := NewRequestValidator()
	req := models.CommentRequest{Text: "ok", Rating: intPtr(9)}

	assert.NoError(t, v.Validate(context.Background(), req, FieldText))
	requireValidationError(t, v.Validate(context.Background(), req), "rating", "")
}

// ---------------------------------------------------------------------------
// Leads
// ---------------------------------------------------------------------------

func TestValidate_LeadRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *models.LeadRequest)
		field  string
	}{
		{name: "valid", mutate: func(l *models.LeadRequest) {}},
		{name: "with optional fields", mutate: func(l *models.LeadRequest) {
			l.Telefono = "600123123"
			l.Mensaje = "hola"
			l.Codigo = strPtr("FANFAN10")
			l.Descuento = strPtr("10%")
			l.ID = "FF-123"
		}},
		{name: "missing nombre", mutate: func(l *models.LeadRequest) { l.Nombre = "" }, field: "nombre"},
		{name: "bad email", mutate: func(l *models.LeadRequest) { l.Email = "ana" }, field: "email"},
		{name: "long email", mutate: func(l *models.LeadRequest) { l.Email = strings.Repeat("a", 95) + "@x.io" + "m" }, field: "email"},
		{name: "long telefono", mutate: func(l *models.LeadRequest) { l.Telefono = strings.Repeat("1", 21) }, field: "telefono"},
		{name: "long mensaje", mutate: func(l *models.LeadRequest) { l.Mensaje = strings.Repeat("m", 1001) }, field: "mensaje"},
		{name: "missing tipo", mutate: func(l *models.LeadRequest) { l.Tipo = "" }, field: "tipo"},
		{name: "long tipo", mutate: func(l *models.LeadRequest) { l.Tipo = strings.Repeat("t", 51) }, field: "tipo"},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validLead()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, tt.field, "")
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	err := NewValidationError("id", "invalid id")
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrUnsupportedType)
	assert.Equal(t, "invalid id", err.Error())
}
