// Package session keeps the logged-in identity in an opaque key-value store,
// keyed by a random session id transported in an HTTP-only cookie.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"github.com/google/uuid"
)

// Store is the opaque session storage. Get returns (nil, nil) when no
// session exists for the id.
type Store interface {
	Get(ctx context.Context, id string) (*utils.Identity, error)
	Set(ctx context.Context, id string, identity *utils.Identity, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// Manager issues, resolves, and destroys sessions
type Manager struct {
	store Store
	cfg   utils.SessionConfig
	ttl   time.Duration
}

func NewManager(store Store, cfg utils.SessionConfig) *Manager {
	ttl := time.Duration(cfg.ExpiryHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Manager{
		store: store,
		cfg:   cfg,
		ttl:   ttl,
	}
}

// Create stores the identity under a fresh session id and sets the cookie
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, identity *utils.Identity) (string, error) {
	id := uuid.NewString()

	if err := m.store.Set(ctx, id, identity, m.ttl); err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return id, nil
}

// Resolve loads the identity for the request's session cookie.
// Returns (nil, nil) when there is no cookie or no stored session.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*utils.Identity, error) {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	return m.store.Get(ctx, cookie.Value)
}

// Destroy removes the session record and expires the cookie. Idempotent.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err == nil && cookie.Value != "" {
		if err := m.store.Delete(ctx, cookie.Value); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
