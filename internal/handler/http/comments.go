// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/resto-reviews/internal/utils"
	"github.com/MKhiriev/resto-reviews/models"
)

func (h *Handler) listRestaurantComments(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.ListRestaurantComments(r.Context(), restaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	restaurantID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CommentRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	created, comments, err := h.services.CommentService.CreateComment(r.Context(), user, restaurantID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.CommentCreatedResponse{Created: created, Comments: comments}, http.StatusCreated)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
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

	var request models.CommentRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.CommentService.UpdateComment(r.Context(), user, id, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.CommentService.DeleteComment(r.Context(), user, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
