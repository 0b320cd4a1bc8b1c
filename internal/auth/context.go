// ABOUTME: Authenticated identity propagation through request handlers
// ABOUTME: Provides WithIdentity/FromContext for request-scoped auth info

package auth

import (
	"context"
)

// Identity holds the authenticated identity decoded from a request token.
// It is populated by the middleware and retrieved from context in handlers.
// The guard attaches only what the token proves; anything else (display
// name, profile fields) is looked up by the handler that needs it.
type Identity struct {
	PrincipalID string
}

// identityKey is the key type for storing Identity in context.Context.
type identityKey struct{}

// WithIdentity returns a new context with the Identity attached.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext retrieves the Identity from the context, returning nil if not present.
func FromContext(ctx context.Context) *Identity {
	val := ctx.Value(identityKey{})
	if val == nil {
		return nil
	}
	id, ok := val.(*Identity)
	if !ok {
		return nil
	}
	return id
}
