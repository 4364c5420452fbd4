// Package middleware contains Huma middleware: request metadata capture,
// access-token authentication, and anonymous rate limiting.
package middleware

import (
	"context"

	"github.com/google/uuid"
)

type clientIPKey struct{}

type accountIDKey struct{}

// ContextWithClientIP stores the client source address in context.
func ContextWithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIPFromContext extracts the client source address from context.
func ClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}

	return ""
}

// ContextWithAccountID stores the authenticated account ID in context.
func ContextWithAccountID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey{}, id)
}

// AccountIDFromContext fetches the authenticated account ID from context.
// The second return is false for anonymous requests.
func AccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountIDKey{}).(uuid.UUID)

	return id, ok
}
