// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/utils"
)

// decodeJSON reads the request body into dst. Any malformed body is reported
// as "invalid JSON body"; a body over the size limit as 413.
func decodeJSON(r *http.Request, dst any) error {
	err := utils.ReadJSON(r, dst)
	if err == nil {
		return nil
	}

	logger.FromRequest(r).Debug().Err(err).Str("func", "decodeJSON").Msg("invalid JSON was passed")

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return ErrRequestBodyTooLarge
	}
	return errInvalidJSONBody
}

// idParam parses a positive integer path parameter.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
