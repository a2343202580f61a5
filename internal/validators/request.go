// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/MKhiriev/resto-reviews/models"
	"github.com/go-playground/validator/v10"
)

// FieldText names the comment text for partial validation of a
// [models.CommentRequest]. Partial validation takes Go field names.
const FieldText = "Text"

// RequestValidator validates API request payloads against the `validate`
// struct tags declared in the models package.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator].
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation(tagMaxBytes, maxBytes)

	return &RequestValidator{validate: v}
}

// Validate checks obj and returns a [*ValidationError] for the first violated
// rule. Supported types are the request payloads of the models package, as
// values or pointers. When fields are given only those struct fields are
// checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, models.LoginRequest, models.AdminLoginRequest,
		models.RestaurantRequest, models.CommentRequest, models.LeadRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.RegisterRequest, *models.LoginRequest, *models.AdminLoginRequest,
		*models.RestaurantRequest, *models.CommentRequest, *models.LeadRequest:
		if reflect.ValueOf(value).IsNil() {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return toValidationError(fieldErrors[0])
	}

	return fmt.Errorf("error validating %T: %w", obj, err)
}

func toValidationError(fe validator.FieldError) *ValidationError {
	field := fe.Field()
	isText := fe.Kind() == reflect.String

	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "email":
		msg = fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if isText {
			msg = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		} else {
			msg = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
	case tagMaxBytes:
		msg = fmt.Sprintf("%s must be at most %s bytes", field, fe.Param())
	case "max":
		if isText {
			msg = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		} else {
			msg = fmt.Sprintf("%s must be at most %s", field, fe.Param())
		}
	default:
		msg = fmt.Sprintf("%s is invalid", field)
	}

	return NewValidationError(field, msg)
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

const tagMaxBytes = "maxbytes"

// maxBytes limits the UTF-8 length of a string field, where max counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
