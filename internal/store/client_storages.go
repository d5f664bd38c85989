package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories. The client keeps no
// post data locally; only the access token is persisted.
type ClientStorages struct {
	// CredentialRepository is the SQLite-backed single credential slot.
	CredentialRepository CredentialRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.CredentialDBPath, creating the file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a fresh [CredentialRepository].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.CredentialDBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		CredentialRepository: NewCredentialRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
