// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// withTimeout cancels the request context after timeout. A handler that
// gives up on the deadline without answering gets the 504 error envelope.
func withTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rw := &responseWriter{ResponseWriter: w}
			next.ServeHTTP(rw, r.WithContext(ctx))

			if !rw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				writeError(rw, r, ErrRequestTimeout)
			}
		})
	}
}
