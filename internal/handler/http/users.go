// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/resto-reviews/internal/utils"
)

func (h *Handler) listUserComments(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	userID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.ListUserComments(r.Context(), user, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) listUserRestaurants(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	userID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	restaurants, err := h.services.RestaurantService.ListUserRestaurants(r.Context(), user, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, restaurants, http.StatusOK)
}
