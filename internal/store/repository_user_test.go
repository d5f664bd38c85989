package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{DB: db, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{DB: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"user_id", "name", "email", "password", "profile_url", "created_at", "updated_at"}

// ── CreateUser ──

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Name: "John", Email: "john@example.com", Password: "hash"}
	now := time.Now()

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, user.Name, user.Email, user.Password, "", now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.Password, "").
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, user.Email, created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unexpected DB error"))
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
}

func TestCreateUser_TransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── Find / Get ──

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, "John", "john@example.com", "hash", "http://img", now, now)

	mock.ExpectQuery("SELECT user_id, name, email").
		WithArgs("john@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John", found.Name)
	assert.Equal(t, "hash", found.Password)
	assert.Equal(t, "http://img", found.ProfileURL)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "john@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.GetUserByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByID_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(7)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetUserByID(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

// ── ListUsers ──

func TestListUsers_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, "Alice", "a@example.com", "h", "", now, now).
		AddRow(2, "Bob", "b@example.com", "h", "", now, now)

	mock.ExpectQuery("SELECT .* FROM users ORDER BY name ASC").
		WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT .* FROM users").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT .* FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── DeleteUser ──

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM users").WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM users").WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "exec error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM users").WithArgs(int64(3)).WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			err := repo.DeleteUser(context.Background(), 3)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
