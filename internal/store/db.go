// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/migrations"
)

// Dialect names the database/sql driver a [DB] talks to. The values double as
// goose dialect names.
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// placeholder returns the bind-variable format squirrel must emit for d.
func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectSQLite {
		return sq.Question
	}

	return sq.Dollar
}

// DB wraps a *sql.DB with the dialect-specific pieces the repositories need.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN. The driver is chosen from
// the DSN, see [ParseDSN].
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn := ParseDSN(cfg.DSN)
	switch dialect {
	case DialectSQLite:
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return NewConnectPostgres(ctx, dsn, cfg.MaxOpenConns, log)
	}
}

// ParseDSN picks the dialect for raw and strips the "sqlite://" scheme that
// the sqlite3 driver does not understand.
//
//	postgres://..., postgresql://..., host=... dbname=...  -> pgx
//	sqlite://accounts.db, sqlite://:memory:               -> sqlite3
//	file:accounts.db?cache=shared, :memory:, *.db, *.sqlite -> sqlite3
func ParseDSN(raw string) (Dialect, string) {
	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DialectPostgres, raw
	case strings.HasPrefix(raw, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(raw, "sqlite://")
	case strings.HasPrefix(raw, "sqlite3://"):
		return DialectSQLite, strings.TrimPrefix(raw, "sqlite3://")
	case strings.HasPrefix(raw, "file:"), raw == ":memory:",
		strings.HasSuffix(raw, ".db"), strings.HasSuffix(raw, ".sqlite"):
		return DialectSQLite, raw
	}

	return DialectPostgres, raw
}

// Dialect reports which driver the connection uses.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// builder returns a squirrel statement builder with the dialect placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder())
}
