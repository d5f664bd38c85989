package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
)

// credentialRepository keeps the access token in a one-row SQLite table so
// the session survives client restarts.
type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] over db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *credentialRepository) Read(ctx context.Context) (string, bool, error) {
	var token string
	err := c.DB.QueryRowContext(ctx, selectCredential).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		c.logger.Err(err).Str("func", "credentialRepository.Read").Msg("failed to read credential")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, true, nil
}

func (c *credentialRepository) Write(ctx context.Context, credential string) error {
	if _, err := c.DB.ExecContext(ctx, upsertCredential, credential); err != nil {
		c.logger.Err(err).Str("func", "credentialRepository.Write").Msg("failed to write credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *credentialRepository) Clear(ctx context.Context) error {
	if _, err := c.DB.ExecContext(ctx, deleteCredential); err != nil {
		c.logger.Err(err).Str("func", "credentialRepository.Clear").Msg("failed to clear credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
