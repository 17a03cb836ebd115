// Package session keeps the server-side half of a login: an opaque session id
// mapped to the id of the authenticated user.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Store maps session ids to user ids.
// Implementations must be safe for concurrent use.
type Store interface {
	// Create starts a new session for userID and returns its id.
	Create(ctx context.Context, userID string) (string, error)

	// Get returns the user id bound to the session.
	Get(ctx context.Context, sessionID string) (string, error)

	// Delete ends the session. Unknown ids yield ErrNotFound.
	Delete(ctx context.Context, sessionID string) error
}
