// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
)

// Storages groups every repository over one shared connection pool.
type Storages struct {
	UserRepository     UserRepository
	BookmarkRepository BookmarkRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Str("func", "NewStorages").Str("dialect", string(db.Dialect())).Msg("database is migrated")

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		BookmarkRepository: NewBookmarkRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
