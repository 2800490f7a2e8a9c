package policy

import (
	"fmt"

	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/pkg/auth"
	apperrors "shoplist-backend/pkg/errors"
)

// Operation is a category of action performed against a list aggregate
type Operation string

const (
	// OpRead covers reading a list and listing its items
	OpRead Operation = "read"
	// OpRename covers changing the list name
	OpRename Operation = "rename"
	// OpArchive covers setting or clearing the archival flag
	OpArchive Operation = "archive"
	// OpDelete covers destroying the list and its items
	OpDelete Operation = "delete"
	// OpManageMembers covers adding and removing members
	OpManageMembers Operation = "manage_members"
	// OpLeave covers a principal removing itself from the membership set
	OpLeave Operation = "leave"
	// OpManageItems covers adding, removing, and resolving items
	OpManageItems Operation = "manage_items"
)

// Allows is the pure access decision: given a list's ownership and
// membership and a requesting principal, it reports whether the operation is
// permitted. It is evaluated per request and never cached, since lists
// mutate between requests.
//
// Ownership does not imply membership: ownerID satisfies owner checks
// independently of the members set, and the owner is not seeded into
// members at creation.
func Allows(op Operation, list *aggregates.List, principal *auth.Principal) bool {
	if list == nil || principal == nil {
		return false
	}

	isOwner := list.IsOwner(principal.ID)
	isMember := list.HasMember(principal.ID)

	switch op {
	case OpRead, OpManageItems:
		return isOwner || isMember
	case OpRename, OpArchive, OpDelete, OpManageMembers:
		return isOwner
	case OpLeave:
		// Any member may leave, the owner included; leaving alters members
		// only, never ownerID.
		return isOwner || isMember
	default:
		return false
	}
}

// Authorize returns a Forbidden error when the operation is not permitted.
// Callers map the error to a rejection response before any mutation, so a
// denied request never partially mutates the aggregate.
func Authorize(op Operation, list *aggregates.List, principal *auth.Principal) error {
	if Allows(op, list, principal) {
		return nil
	}
	return apperrors.NewForbiddenError(fmt.Sprintf("principal is not allowed to %s this list", op))
}
