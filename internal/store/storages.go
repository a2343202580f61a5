// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/resto-reviews/internal/config"
	"github.com/MKhiriev/resto-reviews/internal/logger"
)

const (
	sqliteScheme   = "sqlite://"
	sqliteFileName = "file:"
)

// Storages groups every repository the services depend on.
type Storages struct {
	UserRepository       UserRepository
	RestaurantRepository RestaurantRepository
	CommentRepository    CommentRepository
	LeadRepository       LeadRepository

	db *DB
}

// NewStorages picks a backend from cfg.DB.DSN:
//   - empty: process memory, lost on restart;
//   - postgres:// or postgresql://: PostgreSQL through pgx;
//   - sqlite:// or file:: SQLite through go-sqlite3.
//
// SQL backends are migrated before NewStorages returns.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == "":
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return NewMemoryStorages(), nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, sqliteScheme):
		db, err = NewConnectSQLite(ctx, strings.TrimPrefix(dsn, sqliteScheme), log)
	case strings.HasPrefix(dsn, sqliteFileName):
		db, err = NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Str("func", "NewStorages").Str("dialect", string(db.dialect)).Msg("database migrated")

	return NewSQLStorages(db), nil
}

// NewMemoryStorages returns repositories kept in process memory.
func NewMemoryStorages() *Storages {
	return &Storages{
		UserRepository:       NewMemoryUserRepository(),
		RestaurantRepository: NewMemoryRestaurantRepository(),
		CommentRepository:    NewMemoryCommentRepository(),
		LeadRepository:       NewMemoryLeadRepository(),
	}
}

// NewSQLStorages returns repositories backed by db.
func NewSQLStorages(db *DB) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db),
		RestaurantRepository: NewRestaurantRepository(db),
		CommentRepository:    NewCommentRepository(db),
		LeadRepository:       NewLeadRepository(db),
		db:                   db,
	}
}

// Ping checks the database connection. Memory storages are always reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
