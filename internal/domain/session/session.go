package session

import (
	"context"
	"time"
)

// Session is an admin login. The token is an opaque server-issued identifier;
// it carries no claims and is only meaningful against the store.
type Session struct {
	Token     string
	CreatedAt time.Time
}

type Repository interface {
	// Create issues a new session with the store's configured lifespan.
	Create(ctx context.Context) (*Session, error)
	// Exists reports whether the token identifies a live session.
	Exists(ctx context.Context, token string) (bool, error)
	// Delete discards the session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
