package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for user credential records.
// The store assigns the ID at creation time and enforces email uniqueness;
// a conflicting Create returns ErrEmailTaken.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}

// User represents a stored credential record. PasswordHash is an argon2id
// PHC string and is never compared by plain equality.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
