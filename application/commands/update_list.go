package commands

import apperrors "shoplist-backend/pkg/errors"

// RenameListCommand changes a list's name; owner only
type RenameListCommand struct {
	ListID      string
	PrincipalID string
	Name        string
}

// Validate implements bus.Command
func (c RenameListCommand) Validate() error {
	if c.ListID == "" || c.Name == "" {
		return apperrors.NewValidationError("Missing ID or name.")
	}
	if c.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	return nil
}

// SetArchivedCommand sets a list's archival flag; owner only
type SetArchivedCommand struct {
	ListID      string
	PrincipalID string
	Archived    bool
}

// Validate implements bus.Command
func (c SetArchivedCommand) Validate() error {
	if c.ListID == "" {
		return apperrors.NewValidationError("Missing list ID.")
	}
	if c.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	return nil
}

// DeleteListCommand destroys a list and all contained items; owner only
type DeleteListCommand struct {
	ListID      string
	PrincipalID string
}

// Validate implements bus.Command
func (c DeleteListCommand) Validate() error {
	if c.ListID == "" {
		return apperrors.NewValidationError("Missing list ID.")
	}
	if c.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	return nil
}
