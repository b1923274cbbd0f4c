package repository

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	// AuthUserIDKey is the context key for the authenticated account id
	AuthUserIDKey ctxKey = "auth_user_id"
)

// WithAuthUser adds the authenticated account id to context
func WithAuthUser(ctx context.Context, authUserID uuid.UUID) context.Context {
	return context.WithValue(ctx, AuthUserIDKey, authUserID)
}

// GetAuthUserID extracts the authenticated account id from context
func GetAuthUserID(ctx context.Context) (uuid.UUID, bool) {
	authUserID, ok := ctx.Value(AuthUserIDKey).(uuid.UUID)
	return authUserID, ok
}
