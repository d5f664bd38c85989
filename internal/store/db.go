package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
)

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB together with the dialect specific pieces repositories
// need: an error classifier and the schema migration routine.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// Migrate applies the embedded schema for the connected dialect.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return nil
	}
	return db.migrate(db.DB)
}

// wrapError attaches sentinel to err. Errors the classifier marks as
// [Retryable] are additionally wrapped with [ErrStoreUnavailable].
func (db *DB) wrapError(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
