package domain

import (
	"context"
	"time"
)

type ContextKey string

const UserContextKey ContextKey = "user"

// SessionContextKey carries the shopper's session ID (cart/wishlist scope).
const SessionContextKey ContextKey = "session"

type User struct {
	ID        string    `json:"id"` // UUID
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error

	// FindOrCreate returns the existing user with the given email or creates
	// a new one. Idempotent lookup-or-create.
	FindOrCreate(ctx context.Context, user *User) (*User, error)
}
