// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/service"
	"github.com/MKhiriev/resto-reviews/internal/utils"
	"github.com/MKhiriev/resto-reviews/models"
)

// auth is the authorization gate of protected routes.
//
// A request without a bearer token is rejected with 401 "missing token", a
// token that fails verification with 401 "invalid or expired token". On
// success the identity carried by the token is stored in the request
// context, see [utils.GetIdentityFromContext].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Send()
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, token.Identity)))
	})
}

// userOnly admits registered users. It must run after auth.
func (h *Handler) userOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserFromContext(r.Context()); !ok {
			writeError(w, r, service.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// adminOnly admits the administrator. It must run after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, _ := utils.GetIdentityFromContext(r.Context())
		if _, ok := identity.(models.AdminIdentity); !ok {
			logger.FromRequest(r).Warn().Str("func", "*Handler.adminOnly").Msg("admin route called by non admin")
			writeError(w, r, service.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// caller returns the user stored by auth. Routes using it are guarded by
// userOnly, so a missing user is a wiring bug reported as 403.
func caller(r *http.Request) (models.UserIdentity, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.UserIdentity{}, service.ErrForbidden
	}
	return user, nil
}
