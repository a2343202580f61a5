// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/resto-reviews/internal/utils"
	"github.com/MKhiriev/resto-reviews/models"
)

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.services.RestaurantService.ListRestaurants(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, restaurants, http.StatusOK)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	restaurant, err := h.services.RestaurantService.GetRestaurant(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, restaurant, http.StatusOK)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.RestaurantRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.RestaurantService.CreateRestaurant(r.Context(), user, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.RestaurantRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.RestaurantService.UpdateRestaurant(r.Context(), user, id, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.RestaurantService.DeleteRestaurant(r.Context(), user, id); err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.DeletedResponse{OK: true}, http.StatusOK)
}
