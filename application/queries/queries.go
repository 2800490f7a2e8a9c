package queries

import apperrors "shoplist-backend/pkg/errors"

// Item list filters accepted by ListItemsQuery
const (
	FilterAll        = "all"
	FilterUnresolved = "unresolved"
)

// GetListQuery fetches a single list with its items; owner or member
type GetListQuery struct {
	ListID      string
	PrincipalID string
}

// Validate implements bus.Query
func (q GetListQuery) Validate() error {
	if q.ListID == "" {
		return apperrors.NewValidationError("Missing list ID.")
	}
	if q.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	return nil
}

// ListListsQuery fetches every list the principal owns or has joined
type ListListsQuery struct {
	PrincipalID string
}

// Validate implements bus.Query
func (q ListListsQuery) Validate() error {
	if q.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	return nil
}

// ListItemsQuery fetches the items of a list, optionally filtered to the
// unresolved subset; owner or member
type ListItemsQuery struct {
	ListID      string
	PrincipalID string
	Filter      string
}

// Validate implements bus.Query
func (q ListItemsQuery) Validate() error {
	if q.ListID == "" {
		return apperrors.NewValidationError("Missing list ID.")
	}
	if q.PrincipalID == "" {
		return apperrors.NewValidationError("Missing principal.")
	}
	if q.Filter != "" && q.Filter != FilterAll && q.Filter != FilterUnresolved {
		return apperrors.NewValidationError("Unknown filter.")
	}
	return nil
}
