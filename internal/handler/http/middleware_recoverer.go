// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/resto-reviews/internal/logger"
)

// withRecoverer turns a handler panic into a 500 envelope. It mirrors chi's
// middleware.Recoverer, which answers with a bare status line instead.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecoverer").
				Str("panic", fmt.Sprint(rvr)).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			writeError(w, r, fmt.Errorf("%w: %v", errPanicRecovered, rvr))
		}()

		next.ServeHTTP(w, r)
	})
}
