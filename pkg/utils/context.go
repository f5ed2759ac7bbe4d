package utils

import (
	"context"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the session payload resolved once per request by the auth
// middleware and carried through the request context.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func SetIdentityContext(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func GetIdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	identity, ok := GetIdentityFromContext(ctx)
	if !ok {
		return 0, false
	}
	return identity.UserID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	identity, ok := GetIdentityFromContext(ctx)
	if !ok {
		return "", false
	}
	return identity.Role, true
}
