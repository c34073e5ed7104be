package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/idea2context/internal/logger"
	"github.com/sbilibin2017/idea2context/internal/models"
)

// Error variables
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

const userColumns = `id, name, email, password_hash, created_at, updated_at, last_login`

// UserRepository reads and writes the users table through the privileged client.
// It keeps no state between calls besides the connection pool.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ping checks that the store is reachable.
func (r *UserRepository) Ping(ctx context.Context) error {
	err := r.db.PingContext(ctx)
	if err != nil {
		logger.Log.Errorw("store ping failed", "error", err)
	}
	return err
}

// FindByEmail returns the user with exactly this (already normalized) email,
// or ErrUserNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logQuery(query, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Insert creates a user and returns the stored row.
// A unique constraint violation on email is reported as ErrEmailTaken.
func (r *UserRepository) Insert(ctx context.Context, name, email, passwordHash string, now time.Time) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING ` + userColumns + `
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, name, email, passwordHash, now.UTC())

	logQuery(query, err)

	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// TouchLogin refreshes last_login and updated_at of the user.
func (r *UserRepository) TouchLogin(ctx context.Context, id uuid.UUID, now time.Time) error {
	const query = `
		UPDATE users
		SET last_login = $2, updated_at = $2
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, now.UTC())
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// logQuery logs the query on a single line. Arguments are left out because
// they carry emails and password hashes.
func logQuery(query string, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"error", err,
	)
}
