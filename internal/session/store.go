// Package session issues and resolves opaque session tokens. Tokens carry
// no information themselves; the mapping to a user lives server-side.
package session

import "context"

// Store is the contract every session backend satisfies.
type Store interface {
	// Create issues a fresh token bound to the given user.
	Create(ctx context.Context, userID uint) (string, error)
	// Resolve maps a token back to its user ID. An unknown or expired token
	// returns errors.ErrUnauthenticated.
	Resolve(ctx context.Context, token string) (uint, error)
	// Invalidate destroys a token. Invalidating an unknown token is not an
	// error; logout is idempotent.
	Invalidate(ctx context.Context, token string) error
}
