package ports

import "context"

// SessionStore tracks authenticated sessions by opaque id. Session identity
// reaches the client inside a signed cookie; the store is the source of truth
// for revocation and expiry.
type SessionStore interface {
	// Create opens a session for the user and returns its id.
	Create(ctx context.Context, userID int64) (string, error)
	// GetUserID resolves a session id to the owning user.
	// Unknown or expired ids yield domain.ErrNoSession.
	GetUserID(ctx context.Context, sid string) (int64, error)
	Delete(ctx context.Context, sid string) error
}
