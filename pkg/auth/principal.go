package auth

import (
	"context"

	apperrors "shoplist-backend/pkg/errors"
)

// Principal is an authenticated actor identity making a request.
// It is immutable once resolved for a request and never persisted.
type Principal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PrincipalResolver maps an inbound identity token to a known Principal.
// Implementations must be side-effect free.
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (*Principal, error)
}

// ErrNotAuthenticated is returned when a token does not resolve to a principal
func ErrNotAuthenticated() error {
	return apperrors.NewUnauthorizedError("User not found.").WithCode("uu-app/notAuthenticated")
}
