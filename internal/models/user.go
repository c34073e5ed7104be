package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a row of the users table.
type UserDB struct {
	ID           uuid.UUID  `db:"id"`            // Primary key, assigned by the store
	Name         string     `db:"name"`          // Display name
	Email        string     `db:"email"`         // Lowercased, trimmed, unique
	PasswordHash string     `db:"password_hash"` // bcrypt hash
	CreatedAt    time.Time  `db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time  `db:"updated_at"`    // Last update timestamp
	LastLogin    *time.Time `db:"last_login"`    // Last successful login, nil before the first one
}

// User is the public view of a user. It never carries the password hash.
// swagger:model User
type User struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Public strips the password hash and normalizes timestamps to UTC.
func (u *UserDB) Public() *User {
	out := &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
	if u.LastLogin != nil {
		ll := u.LastLogin.UTC()
		out.LastLogin = &ll
	}
	return out
}
