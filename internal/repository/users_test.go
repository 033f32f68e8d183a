package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
)

const (
	selectUserQ = `(?s)^\s*SELECT\s+id,\s*email,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`
	insertUserQ = `(?s)^\s*INSERT\s+INTO\s+users\s*\(username,\s*email,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`
)

func TestGetUserByUsername_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
		AddRow("u-1", "alice@example.com", "hash", created)
	mock.ExpectQuery(selectUserQ).WithArgs("alice").WillReturnRows(rows)

	user, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, &domain.User{
		ID:           "u-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    created,
	}, user)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectUserQ).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetUserByUsername_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectUserQ).WithArgs("alice").WillReturnError(errors.New("db down"))

	_, err := repo.GetUserByUsername(context.Background(), "alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "db down")
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertUserQ).
		WithArgs("alice", "alice@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u-42", created))

	user := &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	assert.Equal(t, "u-42", user.ID)
	assert.Equal(t, created, user.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolations(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{"users_username_key", domain.ErrUsernameTaken},
		{"users_email_key", domain.ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)

			mock.ExpectQuery(insertUserQ).
				WithArgs("alice", "alice@example.com", "hash").
				WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: tt.constraint})

			err := repo.CreateUser(context.Background(), &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"})
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, domain.ErrConflict)
		})
	}
}

func TestCreateUser_OtherPgError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertUserQ).
		WithArgs("alice", "alice@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation, ConstraintName: "users_email_key"})

	err := repo.CreateUser(context.Background(), &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}
