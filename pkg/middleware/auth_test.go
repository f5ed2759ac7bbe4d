package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MuruliCGPayroute/superpetzjp/pkg/middleware"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okNext(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	reached := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}), &reached
}

func withIdentity(req *http.Request, role string) *http.Request {
	identity := &utils.Identity{UserID: 7, Username: "taro", Email: "taro@example.com", Role: role}
	return req.WithContext(utils.SetIdentityContext(req.Context(), identity))
}

func TestUserRejectsAdminIdentity(t *testing.T) {
	next, reached := okNext(t)
	handler := middleware.User(zap.NewNop())(next)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/auth/user-only", nil), "admin")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *reached)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Forbidden: User access only", payload["msg"])
}

func TestUserAllowsUserIdentity(t *testing.T) {
	next, reached := okNext(t)
	handler := middleware.User(zap.NewNop())(next)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/auth/user-only", nil), "user")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
}

func TestUserWithoutIdentity(t *testing.T) {
	next, reached := okNext(t)
	handler := middleware.User(zap.NewNop())(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/user-only", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestAdminRejectsUserIdentity(t *testing.T) {
	next, reached := okNext(t)
	handler := middleware.Admin(zap.NewNop())(next)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/dashboard/counts", nil), "user")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *reached)
}

// An admin session going through the full cookie-resolving chain must not
// pass the customer-side guard.
func TestSessionChainBlocksAdminOnUserGuard(t *testing.T) {
	manager := session.NewManager(session.NewMemoryStore(), utils.SessionConfig{
		CookieName:  "sp_session",
		ExpiryHours: 1,
	})
	rec := httptest.NewRecorder()
	_, err := manager.Create(context.Background(), rec, &utils.Identity{
		UserID: 1, Username: "boss", Email: "boss@example.com", Role: "admin",
	})
	require.NoError(t, err)

	log := zap.NewNop()
	next, reached := okNext(t)
	handler := middleware.AuthSession(manager, log)(middleware.User(log)(next))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user-only", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	out := httptest.NewRecorder()
	handler.ServeHTTP(out, req)

	assert.Equal(t, http.StatusForbidden, out.Code)
	assert.False(t, *reached)
}
