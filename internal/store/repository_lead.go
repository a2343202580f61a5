// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/models"
)

type leadRepository struct {
	db *DB
}

func NewLeadRepository(db *DB) LeadRepository {
	return &leadRepository{db: db}
}

func (l *leadRepository) CreateLead(ctx context.Context, lead models.Lead) (models.Lead, error) {
	log := logger.FromContext(ctx)

	query, args, err := l.db.builder.
		Insert(lead.TableName()).
		Columns(leadColumns...).
		Values(
			lead.ID,
			lead.Nombre,
			lead.Email,
			lead.Telefono,
			lead.Mensaje,
			lead.Tipo,
			nullableString(lead.Codigo),
			nullableString(lead.Descuento),
			lead.Fecha,
		).
		Suffix(returning(leadColumns)).
		ToSql()
	if err != nil {
		return models.Lead{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanLead(l.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if _, ok := l.db.uniqueViolation(err); ok {
			return models.Lead{}, ErrLeadAlreadyExists
		}
		log.Err(err).Str("func", "*leadRepository.CreateLead").Msg("error inserting lead")
		return models.Lead{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (l *leadRepository) ListLeads(ctx context.Context) ([]models.Lead, error) {
	log := logger.FromContext(ctx)

	query, args, err := l.db.builder.
		Select(leadColumns...).
		From(models.Lead{}.TableName()).
		OrderBy("fecha DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*leadRepository.ListLeads").Msg("error selecting leads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	leads := make([]models.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		leads = append(leads, lead)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return leads, nil
}
