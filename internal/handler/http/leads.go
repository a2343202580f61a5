// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/resto-reviews/internal/app"
	"github.com/MKhiriev/resto-reviews/internal/utils"
	"github.com/MKhiriev/resto-reviews/models"
)

func (h *Handler) createLead(w http.ResponseWriter, r *http.Request) {
	var request models.LeadRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	lead, err := h.services.LeadService.CreateLead(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.LeadCreatedResponse{
		Success: true,
		Message: app.MsgLeadStored,
		Lead:    lead,
	}, http.StatusCreated)
}

func (h *Handler) listLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.services.LeadService.ListLeads(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.LeadListResponse{
		Success: true,
		Leads:   leads,
		Total:   len(leads),
	}, http.StatusOK)
}
