// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	maxQueryRetries = 2
	retryBaseDelay  = 50 * time.Millisecond
)

// DB wraps a *sql.DB together with the dialect-specific pieces the
// repositories need: a squirrel statement builder with the right
// placeholder format and an error classifier.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database connection for cfg.DSN, choosing the driver
// from the DSN: PostgreSQL URLs and keyword DSNs use pgx, "file:",
// "sqlite:" and ":memory:" DSNs use SQLite.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, err := dialectFromDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("cannot choose database driver")
		return nil, err
	}

	switch dialect {
	case migrations.DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}

func dialectFromDSN(dsn string) (migrations.Dialect, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return migrations.DialectPostgres, nil
	case strings.HasPrefix(dsn, "file:"),
		strings.HasPrefix(dsn, "sqlite:"),
		strings.HasPrefix(dsn, ":memory:"):
		return migrations.DialectSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// newDB assembles a DB for an already opened connection.
func newDB(conn *sql.DB, dialect migrations.Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect reports which SQL flavor the connection speaks.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op and repeats it while the classifier reports the error
// as transient, up to maxQueryRetries extra attempts.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxQueryRetries, retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.withRetry").Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
