package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIdentity = utils.Identity{UserID: 7, Username: "taro", Email: "taro@example.com", Role: "user"}

func newManager() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), utils.SessionConfig{
		CookieName:  "sp_session",
		ExpiryHours: 1,
	})
}

// requestWith copies the session cookie from a recorded response onto a
// fresh request, the way a browser would.
func requestWith(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSessionRoundTrip(t *testing.T) {
	m := newManager()
	rec := httptest.NewRecorder()

	id, err := m.Create(context.Background(), rec, &testIdentity)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sp_session", cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	identity, err := m.Resolve(context.Background(), requestWith(rec))
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, testIdentity, *identity)
}

func TestResolveWithoutCookie(t *testing.T) {
	m := newManager()

	identity, err := m.Resolve(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestResolveUnknownSessionID(t *testing.T) {
	m := newManager()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sp_session", Value: "not-a-real-session"})

	identity, err := m.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestDestroyRemovesSession(t *testing.T) {
	m := newManager()
	rec := httptest.NewRecorder()

	_, err := m.Create(context.Background(), rec, &testIdentity)
	require.NoError(t, err)

	logoutRec := httptest.NewRecorder()
	require.NoError(t, m.Destroy(context.Background(), logoutRec, requestWith(rec)))

	// Cookie is expired on the logout response
	cookies := logoutRec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)

	// The old session id no longer resolves
	identity, err := m.Resolve(context.Background(), requestWith(rec))
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestDestroyWithoutSessionIsIdempotent(t *testing.T) {
	m := newManager()
	rec := httptest.NewRecorder()

	require.NoError(t, m.Destroy(context.Background(), rec, httptest.NewRequest(http.MethodPost, "/", nil)))
	require.NoError(t, m.Destroy(context.Background(), rec, httptest.NewRequest(http.MethodPost, "/", nil)))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := session.NewMemoryStore()

	require.NoError(t, store.Set(context.Background(), "sid", &testIdentity, 10*time.Millisecond))

	identity, err := store.Get(context.Background(), "sid")
	require.NoError(t, err)
	require.NotNil(t, identity)

	time.Sleep(20 * time.Millisecond)

	identity, err = store.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Nil(t, identity, "expired session must read as absent")
}
