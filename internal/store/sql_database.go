// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/gae-jp/portfolio-api/internal/config"
	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver name and a
// squirrel statement builder configured with the driver's placeholder format.
//
// The handle is opened once at process start, injected into every repository,
// and closed on shutdown by the owner (cmd/server).
type DB struct {
	*sql.DB
	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewDB opens a database connection for the configured driver.
// Supported drivers: "sqlite3" and "pgx".
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Migrate brings the schema up to date using the embedded goose migrations
// for the connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
