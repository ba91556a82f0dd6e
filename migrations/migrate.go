// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

// Package migrations applies the embedded goose SQL migrations for the
// portfolio database schema.
//
// Both supported drivers ship their own migration set: sqlite3 and postgres
// dialects differ in auto-increment syntax, so each lives in its own
// subdirectory of the embedded filesystem.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate brings the database schema up to date for the given driver
// ("sqlite3" or "pgx").
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	var dialect, dir string
	switch driver {
	case "sqlite3":
		dialect, dir = "sqlite3", "sqlite"
	case "pgx":
		dialect, dir = "pgx", "postgres"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
