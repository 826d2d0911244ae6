package model

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the decoded access-token payload. It is attached to the
// request context by the authenticate middleware, lives for one request,
// and is never mutated.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// ContextManager stores and retrieves the authenticated identity on a
// request context.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}
