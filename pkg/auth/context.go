package auth

import "context"

// contextKey is a private type for context keys
type contextKey string

const principalKey contextKey = "principal"

// SetPrincipalInContext stores the resolved principal in the request context
func SetPrincipalInContext(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipalFromContext extracts the resolved principal from the context
func GetPrincipalFromContext(ctx context.Context) (*Principal, error) {
	principal, ok := ctx.Value(principalKey).(*Principal)
	if !ok || principal == nil {
		return nil, ErrNotAuthenticated()
	}
	return principal, nil
}
