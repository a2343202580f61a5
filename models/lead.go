// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LeadIDPrefix prefixes server generated lead identifiers.
const LeadIDPrefix = "FF-"

// Lead is a marketing contact captured by the public lead form.
// Field names follow the form's wire format.
type Lead struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Mensaje   string    `json:"mensaje"`
	Tipo      string    `json:"tipo"`
	Codigo    *string   `json:"codigo"`
	Descuento *string   `json:"descuento"`
	Fecha     time.Time `json:"fecha"`
}

// TableName returns the name of the database table
// associated with the Lead model.
func (l Lead) TableName() string {
	return "leads"
}
