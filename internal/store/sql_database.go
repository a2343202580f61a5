// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/migrations"
)

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// UniqueViolation reports whether err is a unique constraint violation.
	// The returned string names the violated constraint or column.
	UniqueViolation(err error) (string, bool)
}

// DB wraps a database handle together with the dialect specific parts the
// SQL repositories need: a statement builder with the right placeholder
// format and a classifier for driver errors.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	dialect            migrations.Dialect
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect migrations.Dialect, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		dialect:            dialect,
		logger:             log,
	}
}

// Migrate applies all pending schema migrations for the DB dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

func (db *DB) uniqueViolation(err error) (string, bool) {
	if db.errorClassificator == nil {
		return "", false
	}
	return db.errorClassificator.UniqueViolation(err)
}
