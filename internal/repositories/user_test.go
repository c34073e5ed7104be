package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at", "last_login"}

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUserRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestUserRepository_FindByEmail(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		email   string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:  "found",
			email: "alice@example.com",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userRowColumns).
					AddRow(id.String(), "Alice", "alice@example.com", "$2a$hash", created, created, nil)
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("alice@example.com").
					WillReturnRows(rows)
			},
		},
		{
			name:  "not found",
			email: "ghost@example.com",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("ghost@example.com").
					WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:  "db error",
			email: "alice@example.com",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("alice@example.com").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			user, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, user.ID)
				assert.Equal(t, "Alice", user.Name)
				assert.Equal(t, tt.email, user.Email)
				assert.Nil(t, user.LastLogin)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Insert(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("created", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rows := sqlmock.NewRows(userRowColumns).
			AddRow(id.String(), "Alice", "alice@example.com", "$2a$hash", now, now, nil)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name, email, password_hash, created_at, updated_at)")).
			WithArgs("Alice", "alice@example.com", "$2a$hash", now).
			WillReturnRows(rows)

		user, err := repo.Insert(context.Background(), "Alice", "alice@example.com", "$2a$hash", now)
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, now, user.CreatedAt)
		assert.Equal(t, now, user.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

		user, err := repo.Insert(context.Background(), "Alice", "alice@example.com", "$2a$hash", now)
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other pg error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation})

		_, err := repo.Insert(context.Background(), "Alice", "alice@example.com", "$2a$hash", now)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})
}

func TestUserRepository_TouchLogin(t *testing.T) {
	now := time.Date(2025, 3, 2, 8, 30, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("updated", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1")).
			WithArgs(id, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.TouchLogin(context.Background(), id, now))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
			WillReturnError(errors.New("timeout"))

		assert.EqualError(t, repo.TouchLogin(context.Background(), id, now), "timeout")
	})
}

func TestUserRepository_Ping(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectPing()
	assert.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("no route to host"))
	assert.Error(t, repo.Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}
