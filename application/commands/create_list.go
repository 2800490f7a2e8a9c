package commands

import apperrors "shoplist-backend/pkg/errors"

// CreateListCommand creates a new list owned by the requesting principal.
// The list id is assigned by the caller before dispatch so the response can
// be built without a follow-up read.
type CreateListCommand struct {
	ListID  string
	OwnerID string
	Name    string
}

// Validate implements bus.Command
func (c CreateListCommand) Validate() error {
	if c.ListID == "" {
		return apperrors.NewValidationError("Missing list ID.")
	}
	if c.OwnerID == "" {
		return apperrors.NewValidationError("Missing owner ID.")
	}
	if c.Name == "" {
		return apperrors.NewValidationError("Missing list name.")
	}
	return nil
}
