// Package migrations embeds the SQL schema of both binaries and applies it
// with goose. The server schema lives in postgres/, the client credential
// slot in sqlite/.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies the server schema to a PostgreSQL database opened with the
// pgx stdlib driver.
func Migrate(db *sql.DB) error {
	return up(db, "pgx", "postgres")
}

// MigrateClient applies the client schema to a SQLite database.
func MigrateClient(db *sql.DB) error {
	return up(db, "sqlite3", "sqlite")
}

func up(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
