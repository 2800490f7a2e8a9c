package commands

import apperrors "shoplist-backend/pkg/errors"

// AddItemCommand appends a new unsolved item to a list; owner or member.
// The item id is assigned by the caller before dispatch.
type AddItemCommand struct {
	ListID      string
	PrincipalID string
	ItemID      string
	Text        string
}

// Validate implements bus.Command
func (c AddItemCommand) Validate() error {
	if c.ListID == "" || c.Text == "" {
		return apperrors.NewValidationError("Missing listId or text.")
	}
	if c.ItemID == "" {
		return apperrors.NewValidationError("Missing item ID.")
	}
	if c.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	return nil
}

// RemoveItemCommand removes an item by id; owner or member. An absent item
// id is a success no-op.
type RemoveItemCommand struct {
	ListID      string
	PrincipalID string
	ItemID      string
}

// Validate implements bus.Command
func (c RemoveItemCommand) Validate() error {
	if c.ListID == "" || c.ItemID == "" {
		return apperrors.NewValidationError("Missing IDs.")
	}
	if c.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	return nil
}

// ResolveItemCommand sets the solved flag on an item; owner or member.
// An unknown item id yields NotFound.
type ResolveItemCommand struct {
	ListID      string
	PrincipalID string
	ItemID      string
	Solved      bool
}

// Validate implements bus.Command
func (c ResolveItemCommand) Validate() error {
	if c.ListID == "" || c.ItemID == "" {
		return apperrors.NewValidationError("Missing fields.")
	}
	if c.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	return nil
}
