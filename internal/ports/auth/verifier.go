package auth

import (
	"context"
	"errors"
)

var ErrInvalidSession = errors.New("invalid session")

// SessionVerifier resuelve un session id (cookie) a claims o error.
type SessionVerifier interface {
	Verify(ctx context.Context, sessionID string) (Claims, error)
}
