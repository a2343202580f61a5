// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/resto-reviews/internal/app"
	"github.com/MKhiriev/resto-reviews/internal/crypto"
	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/service"
	"github.com/MKhiriev/resto-reviews/internal/store"
	"github.com/MKhiriev/resto-reviews/internal/utils"
	"github.com/MKhiriev/resto-reviews/internal/validators"
	"github.com/MKhiriev/resto-reviews/models"
)

// errorStatusMap lists the errors a client may see. Anything else is
// answered with 500 and a generic message.
var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrUnauthenticated:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,

	crypto.ErrPasswordTooLong: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrEmailAlreadyExists:    http.StatusBadRequest,
	store.ErrLeadAlreadyExists:     http.StatusBadRequest,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrRestaurantNotFound:    http.StatusNotFound,
	store.ErrCommentNotFound:       http.StatusNotFound,

	service.ErrStorageUnavailable: http.StatusServiceUnavailable,

	ErrRequestBodyTooLarge: http.StatusRequestEntityTooLarge,
	ErrRequestTimeout:      http.StatusGatewayTimeout,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
}

// statusFromError returns the HTTP status and the client-facing message for
// err. Validation errors carry their own message.
func statusFromError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, service.ErrStorageUnavailable) {
		return http.StatusGatewayTimeout, ErrRequestTimeout.Error()
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers the request with the error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", "writeError").Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Success: false,
		Error:   models.ErrorBody{Status: status, Message: message},
	}, status)
}
