package middleware

import (
	"context"

	"github.com/baharkarakas/blog-backend/internal/models"
)

type userKey struct{}

// WithUser attaches the authenticated user resolved by the auth gate.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFrom returns the authenticated user. ok is false on routes that
// did not pass through the gate.
func UserFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey{}).(models.User)
	return u, ok
}
