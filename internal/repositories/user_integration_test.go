//go:build integration

package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const usersSchema = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	last_login TIMESTAMPTZ
);
`

func setupUserPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(usersSchema)
	require.NoError(t, err)

	return db
}

func TestUserRepository_Postgres(t *testing.T) {
	db := setupUserPostgresContainer(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, repo.Ping(ctx))

	created, err := repo.Insert(ctx, "Charlie", "charlie@example.com", "$2a$hash", now)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, now.Equal(created.CreatedAt))

	t.Run("FindByEmail", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "charlie@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
		assert.Equal(t, "$2a$hash", user.PasswordHash)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := repo.Insert(ctx, "Charlie 2", "charlie@example.com", "$2a$other", now)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("TouchLogin", func(t *testing.T) {
		later := now.Add(time.Hour)
		require.NoError(t, repo.TouchLogin(ctx, created.ID, later))

		user, err := repo.FindByEmail(ctx, "charlie@example.com")
		require.NoError(t, err)
		require.NotNil(t, user.LastLogin)
		assert.True(t, later.Equal(*user.LastLogin))
		assert.True(t, later.Equal(user.UpdatedAt))
	})

	t.Run("ConcurrentInsertSingleWinner", func(t *testing.T) {
		const workers = 8
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			winners  int
			conflict int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Insert(ctx, "Race", "race@example.com", "$2a$hash", now)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					winners++
				case err == ErrEmailTaken:
					conflict++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, winners)
		assert.Equal(t, workers-1, conflict)
	})
}
