package commands

import apperrors "shoplist-backend/pkg/errors"

// AddMemberCommand adds a member to a list; owner only, idempotent
type AddMemberCommand struct {
	ListID      string
	PrincipalID string
	MemberID    string
}

// Validate implements bus.Command
func (c AddMemberCommand) Validate() error {
	if c.ListID == "" || c.MemberID == "" {
		return apperrors.NewValidationError("Missing listId or memberId.")
	}
	if c.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	return nil
}

// RemoveMemberCommand removes a member from a list; owner only, idempotent
type RemoveMemberCommand struct {
	ListID      string
	PrincipalID string
	MemberID    string
}

// Validate implements bus.Command
func (c RemoveMemberCommand) Validate() error {
	if c.ListID == "" || c.MemberID == "" {
		return apperrors.NewValidationError("Missing listId or memberId.")
	}
	if c.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	return nil
}

// LeaveListCommand removes the requesting principal from a list's members.
// Leaving never alters ownerId.
type LeaveListCommand struct {
	ListID      string
	PrincipalID string
}

// Validate implements bus.Command
func (c LeaveListCommand) Validate() error {
	if c.ListID == "" {
		return apperrors.NewValidationError("Missing listId.")
	}
	if c.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	return nil
}
