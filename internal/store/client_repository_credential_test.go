package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "blog-keeper.db")

	storages, err := NewClientStorages(context.Background(), config.ClientStorage{CredentialDBPath: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

// TestCredentialRepository_RoundTrip проверяет запись, чтение и очистку слота.
func TestCredentialRepository_RoundTrip(t *testing.T) {
	repo := newTestClientStorages(t).CredentialRepository
	ctx := context.Background()

	_, ok, err := repo.Read(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "fresh store must be empty")

	require.NoError(t, repo.Write(ctx, "token-1"))
	got, ok, err := repo.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "token-1", got)

	// single slot: second write replaces the first
	require.NoError(t, repo.Write(ctx, "token-2"))
	got, _, _ = repo.Read(ctx)
	assert.Equal(t, "token-2", got)

	require.NoError(t, repo.Clear(ctx))
	_, ok, err = repo.Read(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// clearing an empty slot is fine
	assert.NoError(t, repo.Clear(ctx))
}

func TestCredentialRepository_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog-keeper.db")
	ctx := context.Background()

	first, err := NewClientStorages(ctx, config.ClientStorage{CredentialDBPath: path}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.CredentialRepository.Write(ctx, "persisted"))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, config.ClientStorage{CredentialDBPath: path}, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	got, ok, err := second.CredentialRepository.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", got)
}

func TestCredentialRepository_ReadError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT token FROM credentials").WillReturnError(errors.New("disk I/O error"))

	_, ok, err := repo.Read(context.Background())
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCredentialRepository_WriteError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO credentials").
		WithArgs("tok").
		WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, repo.Write(context.Background(), "tok"), ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientStorages_Close_Nil(t *testing.T) {
	assert.NoError(t, (&ClientStorages{}).Close())
	assert.NoError(t, (&Storages{}).Close())
}
