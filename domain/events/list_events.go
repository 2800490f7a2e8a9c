package events

import "time"

// List Events

// ListCreated is raised when a new list is created
type ListCreated struct {
	BaseEvent
	ListID  string `json:"list_id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
}

// NewListCreated creates a ListCreated event
func NewListCreated(listID, ownerID, name string, timestamp time.Time) ListCreated {
	return ListCreated{
		BaseEvent: BaseEvent{
			AggregateID: listID,
			EventType:   "list.created",
			Timestamp:   timestamp,
			Version:     1,
		},
		ListID:  listID,
		OwnerID: ownerID,
		Name:    name,
	}
}

// ListRenamed is raised when a list's name changes
type ListRenamed struct {
	BaseEvent
	ListID  string `json:"list_id"`
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// NewListRenamed creates a ListRenamed event
func NewListRenamed(listID, oldName, newName string, timestamp time.Time) ListRenamed {
	return ListRenamed{
		BaseEvent: BaseEvent{
			AggregateID: listID,
			EventType:   "list.renamed",
			Timestamp:   timestamp,
			Version:     1,
		},
		ListID:  listID,
		OldName: oldName,
		NewName: newName,
	}
}

// ListArchiveSet is raised when a list's archival flag changes
type ListArchiveSet struct {
	BaseEvent
	ListID   string `json:"list_id"`
	Archived bool   `json:"archived"`
}

// NewListArchiveSet creates a ListArchiveSet event
func NewListArchiveSet(listID string, archived bool, timestamp time.Time) ListArchiveSet {
	return ListArchiveSet{
		BaseEvent: BaseEvent{
			AggregateID: listID,
			EventType:   "list.archive_set",
			Timestamp:   timestamp,
			Version:     1,
		},
		ListID:   listID,
		Archived: archived,
	}
}

// Membership Events

// MemberAdded is raised when the owner adds a member
type MemberAdded struct {
	BaseEvent
	ListID   string `json:"list_id"`
	MemberID string `json:"member_id"`
}

// NewMemberAdded creates a MemberAdded event
func NewMemberAdded(listID, memberID string, timestamp time.Time) MemberAdded {
	return MemberAdded{
		BaseEvent: BaseEvent{
			AggregateID: listID,
			EventType:   "list.member_added",
			Timestamp:   timestamp,
			Version:     1,
		},
		ListID:   listID,
		MemberID: memberID,
	}
}

// MemberRemoved is raised when a member is removed, by the owner or by
// leaving voluntarily
type MemberRemoved struct {
	BaseEvent
	ListID   string `json:"list_id"`
	MemberID string `json:"member_id"`
	Left     bool   `json:"left"`
}

// NewMemberRemoved creates a MemberRemoved event
func NewMemberRemoved(listID, memberID string, left bool, timestamp time.Time) MemberRemoved {
	return MemberRemoved{
		BaseEvent: BaseEvent{
			AggregateID: listID,
			EventType:   "list.member_removed",
			Timestamp:   timestamp,
			Version:     1,
		},
		ListID:   listID,
		MemberID: memberID,
		Left:     left,
	}
}

// Item Events

// ItemAdded is raised when an item is appended to a list
type ItemAdded struct {
	BaseEvent
	ListID string `json:"list_id"`
	ItemID string `json:"item_id"`
	Text   string `json:"text"`
}

// NewItemAdded creates an ItemAdded event
func NewItemAdded(listID, itemID, text string, timestamp time.Time) ItemAdded {
	return ItemAdded{
		BaseEvent: BaseEvent{
			AggregateID: listID,
			EventType:   "item.added",
			Timestamp:   timestamp,
			Version:     1,
		},
		ListID: listID,
		ItemID: itemID,
		Text:   text,
	}
}

// ItemRemoved is raised when an item is removed from a list
type ItemRemoved struct {
	BaseEvent
	ListID string `json:"list_id"`
	ItemID string `json:"item_id"`
}

// NewItemRemoved creates an ItemRemoved event
func NewItemRemoved(listID, itemID string, timestamp time.Time) ItemRemoved {
	return ItemRemoved{
		BaseEvent: BaseEvent{
			AggregateID: listID,
			EventType:   "item.removed",
			Timestamp:   timestamp,
			Version:     1,
		},
		ListID: listID,
		ItemID: itemID,
	}
}

// ItemResolved is raised when an item's solved flag changes
type ItemResolved struct {
	BaseEvent
	ListID string `json:"list_id"`
	ItemID string `json:"item_id"`
	Solved bool   `json:"solved"`
}

// NewItemResolved creates an ItemResolved event
func NewItemResolved(listID, itemID string, solved bool, timestamp time.Time) ItemResolved {
	return ItemResolved{
		BaseEvent: BaseEvent{
			AggregateID: listID,
			EventType:   "item.resolved",
			Timestamp:   timestamp,
			Version:     1,
		},
		ListID: listID,
		ItemID: itemID,
		Solved: solved,
	}
}

// ListDeleted is raised when a list and its items are destroyed
type ListDeleted struct {
	BaseEvent
	ListID  string `json:"list_id"`
	OwnerID string `json:"owner_id"`
}

// NewListDeleted creates a ListDeleted event
func NewListDeleted(listID, ownerID string, timestamp time.Time) ListDeleted {
	return ListDeleted{
		BaseEvent: BaseEvent{
			AggregateID: listID,
			EventType:   "list.deleted",
			Timestamp:   timestamp,
			Version:     1,
		},
		ListID:  listID,
		OwnerID: ownerID,
	}
}
