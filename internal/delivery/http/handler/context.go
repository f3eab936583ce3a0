package handler

import (
	"context"

	"memberportal/internal/domain/auth"
)

// contextKey is the type for context keys
type contextKey string

// SessionContextKey is the key used to store the resolved session in context
const SessionContextKey contextKey = "session"

// SessionFromContext retrieves the session from request context.
// nil means the request is anonymous.
func SessionFromContext(ctx context.Context) *auth.Session {
	s, ok := ctx.Value(SessionContextKey).(*auth.Session)
	if !ok {
		return nil
	}
	return s
}
