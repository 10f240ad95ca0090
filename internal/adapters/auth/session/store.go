package session

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Store guarda sessionID -> userID con vencimiento.
type Store interface {
	Save(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error
	// Lookup devuelve ErrSessionNotFound si no existe o venció.
	Lookup(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}
