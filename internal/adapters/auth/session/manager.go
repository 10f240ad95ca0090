// Package session implementa login por cookie: id aleatorio en cookie HttpOnly,
// userID en un Store (memoria o Redis).
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"vetstock/internal/ports/auth"
)

const (
	DefaultCookieName = "vetstock.sid"
	DefaultTTL        = 7 * 24 * time.Hour
)

// UserLookup recarga al usuario de la sesión en cada request.
type UserLookup interface {
	ClaimsOf(ctx context.Context, userID int64) (auth.Claims, error)
}

type Options struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type Manager struct {
	store  Store
	users  UserLookup
	cookie string
	ttl    time.Duration
	secure bool
}

var _ auth.SessionVerifier = (*Manager)(nil)

func NewManager(store Store, users UserLookup, opts Options) *Manager {
	name := strings.TrimSpace(opts.CookieName)
	if name == "" {
		name = DefaultCookieName
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{store: store, users: users, cookie: name, ttl: ttl, secure: opts.Secure}
}

func (m *Manager) CookieName() string { return m.cookie }

// Verify resuelve el session id a claims frescos del usuario.
func (m *Manager) Verify(ctx context.Context, sessionID string) (auth.Claims, error) {
	userID, err := m.store.Lookup(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return auth.Claims{}, auth.ErrInvalidSession
		}
		return auth.Claims{}, fmt.Errorf("session lookup: %w", err)
	}

	claims, err := m.users.ClaimsOf(ctx, userID)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %w", auth.ErrInvalidSession, err)
	}
	return claims, nil
}

// Start crea una sesión nueva para el usuario y setea la cookie.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, userID int64) error {
	sid := uuid.NewString()
	if err := m.store.Save(ctx, sid, userID, m.ttl); err != nil {
		return fmt.Errorf("session save: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// End borra la sesión de la request (si hay) y expira la cookie.
func (m *Manager) End(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if c, err := r.Cookie(m.cookie); err == nil && c.Value != "" {
		if err := m.store.Delete(ctx, c.Value); err != nil {
			return fmt.Errorf("session delete: %w", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
