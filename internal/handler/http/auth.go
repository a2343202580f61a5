// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/utils"
	"github.com/MKhiriev/resto-reviews/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, user.Identity(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.ID).Msg("user successfully logged in")
	h.respondWithToken(w, r, user.Identity(), http.StatusOK)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var request models.AdminLoginRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	admin, err := h.services.AuthService.AdminLogin(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, admin, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	identity, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, identity models.Identity, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Token: token.SignedString,
		User:  models.PublicIdentity(identity),
	}, status)
}
