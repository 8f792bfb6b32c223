package auth

import (
	"context"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

// Identity arrives trusted from the edge; the service only plumbs the uid
// through the request context. Sign-in itself happens at the hosted identity
// provider, never here.
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

// UserID helper - returns the signed-in uid populated by middleware, or ""
func UserID(ctx context.Context) string {
	if val, ok := ctx.Value(userIDKey).(string); ok {
		return val
	}
	return ""
}
