package auth

import "context"

type contextKey int

const (
	customerKey contextKey = iota
	tokenKey
)

// ContextWithSession attaches the authenticated customer ID and the raw
// bearer token to the context. Adapters read the token back to forward it to
// the external services; nothing else in the process holds session state.
func ContextWithSession(ctx context.Context, customerID int64, token string) context.Context {
	ctx = context.WithValue(ctx, customerKey, customerID)
	return context.WithValue(ctx, tokenKey, token)
}

// CustomerFromContext extracts the authenticated customer ID.
func CustomerFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(customerKey).(int64)
	return id, ok
}

// TokenFromContext extracts the raw bearer token for upstream forwarding.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
