package context

import (
	"context"

	"github.com/mkravets/bookmarks-api/internal/model"
)

// identityKey is the private context key under which the authenticated
// identity is stored.
type identityKey struct{}

// Manager stores and retrieves the authenticated identity on a request
// context. It implements model.ContextManager.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a child context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext retrieves the identity set by SetIdentityToContext.
// The boolean is false when the context carries no identity.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(model.Identity)
	return identity, ok
}
