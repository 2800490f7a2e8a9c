package aggregates

import (
	"errors"
	"time"

	"shoplist-backend/domain/core/entities"
	"shoplist-backend/domain/core/valueobjects"
	"shoplist-backend/domain/events"
)

// List is the aggregate root for a shared shopping list. The list and its
// embedded items form a single unit of persistence and authorization.
//
// Invariants: exactly one immutable ownerID; members holds no duplicates;
// every item id is unique within items; items keep insertion order.
// The owner is not seeded into members at creation; owner checks are
// satisfied by ownerID alone.
type List struct {
	id        valueobjects.ListID
	name      string
	ownerID   string
	members   []string
	items     []*entities.Item
	archived  bool
	createdAt time.Time
	updatedAt time.Time

	// version is the aggregate's current version; persistedVersion is the
	// version last read from the store. The repository writes version and
	// conditions on persistedVersion so concurrent writers conflict instead
	// of silently losing updates.
	version          int
	persistedVersion int

	events []events.DomainEvent
}

// ErrItemNotFound is returned when an item id does not exist in the list
var ErrItemNotFound = errors.New("item not found in list")

// NewList creates a new list aggregate owned by ownerID
func NewList(id valueobjects.ListID, name, ownerID string) (*List, error) {
	if id.IsZero() {
		return nil, errors.New("list id required")
	}
	if name == "" {
		return nil, errors.New("list name required")
	}
	if ownerID == "" {
		return nil, errors.New("ownerID required")
	}

	now := time.Now()
	list := &List{
		id:        id,
		name:      name,
		ownerID:   ownerID,
		members:   []string{},
		items:     []*entities.Item{},
		archived:  false,
		createdAt: now,
		updatedAt: now,
		version:   1,
		events:    []events.DomainEvent{},
	}

	list.addEvent(events.NewListCreated(id.String(), ownerID, name, now))

	return list, nil
}

// ReconstructList recreates a list from stored data
func ReconstructList(
	id valueobjects.ListID,
	name string,
	ownerID string,
	members []string,
	items []*entities.Item,
	archived bool,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*List, error) {
	if id.IsZero() || name == "" || ownerID == "" {
		return nil, errors.New("required fields missing for list reconstruction")
	}

	if members == nil {
		members = []string{}
	}
	if items == nil {
		items = []*entities.Item{}
	}

	return &List{
		id:               id,
		name:             name,
		ownerID:          ownerID,
		members:          members,
		items:            items,
		archived:         archived,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		version:          version,
		persistedVersion: version,
		events:           []events.DomainEvent{},
	}, nil
}

// ID returns the list's unique identifier
func (l *List) ID() valueobjects.ListID {
	return l.id
}

// Name returns the list's name
func (l *List) Name() string {
	return l.name
}

// OwnerID returns the owning principal's identifier. Ownership is fixed for
// the lifetime of the list; there is no transfer operation.
func (l *List) OwnerID() string {
	return l.ownerID
}

// Members returns a copy of the membership set
func (l *List) Members() []string {
	members := make([]string, len(l.members))
	copy(members, l.members)
	return members
}

// Archived reports whether the list is archived
func (l *List) Archived() bool {
	return l.archived
}

// CreatedAt returns when the list was created
func (l *List) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns when the list was last modified
func (l *List) UpdatedAt() time.Time {
	return l.updatedAt
}

// Version returns the aggregate's current version
func (l *List) Version() int {
	return l.version
}

// PersistedVersion returns the version last loaded from the store, used as
// the expected value in conditional writes
func (l *List) PersistedVersion() int {
	return l.persistedVersion
}

// IsOwner reports whether the principal owns this list
func (l *List) IsOwner(principalID string) bool {
	return l.ownerID == principalID
}

// HasMember reports whether the principal appears in the membership set
func (l *List) HasMember(principalID string) bool {
	for _, m := range l.members {
		if m == principalID {
			return true
		}
	}
	return false
}

// Rename changes the list's name. Owner-only enforcement happens in the
// access policy, not here.
func (l *List) Rename(newName string) error {
	if newName == "" {
		return errors.New("list name required")
	}

	oldName := l.name
	l.name = newName
	l.touch()

	l.addEvent(events.NewListRenamed(l.id.String(), oldName, newName, l.updatedAt))

	return nil
}

// SetArchived toggles the archival flag. Setting the current value again is
// a no-op and reports no change, so callers can skip the store write.
func (l *List) SetArchived(archived bool) bool {
	if l.archived == archived {
		return false
	}

	l.archived = archived
	l.touch()

	l.addEvent(events.NewListArchiveSet(l.id.String(), archived, l.updatedAt))

	return true
}

// AddMember appends a member to the membership set. Adding an existing
// member is a no-op and reports no change.
func (l *List) AddMember(memberID string) (bool, error) {
	if memberID == "" {
		return false, errors.New("memberID required")
	}

	if l.HasMember(memberID) {
		return false, nil
	}

	l.members = append(l.members, memberID)
	l.touch()

	l.addEvent(events.NewMemberAdded(l.id.String(), memberID, l.updatedAt))

	return true, nil
}

// RemoveMember removes all occurrences of memberID from the membership set.
// Removing an absent member is a no-op and reports no change.
func (l *List) RemoveMember(memberID string) bool {
	return l.removeFromMembers(memberID, false)
}

// Leave removes the principal itself from the membership set. The owner may
// leave; ownerID is never altered by leaving.
func (l *List) Leave(principalID string) bool {
	return l.removeFromMembers(principalID, true)
}

func (l *List) removeFromMembers(memberID string, left bool) bool {
	kept := l.members[:0]
	removed := false
	for _, m := range l.members {
		if m == memberID {
			removed = true
			continue
		}
		kept = append(kept, m)
	}

	if !removed {
		return false
	}

	l.members = kept
	l.touch()

	l.addEvent(events.NewMemberRemoved(l.id.String(), memberID, left, l.updatedAt))

	return true
}

// AddItem appends a new unsolved item with the given pre-assigned id
func (l *List) AddItem(itemID valueobjects.ItemID, text string) (*entities.Item, error) {
	if l.findItem(itemID) != nil {
		return nil, errors.New("item id already exists in list")
	}

	item, err := entities.NewItem(itemID, text)
	if err != nil {
		return nil, err
	}

	l.items = append(l.items, item)
	l.touch()

	l.addEvent(events.NewItemAdded(l.id.String(), itemID.String(), text, l.updatedAt))

	return item, nil
}

// RemoveItem removes the item by id. Removing an absent item is a no-op and
// reports no change; it is not an error.
func (l *List) RemoveItem(itemID valueobjects.ItemID) bool {
	kept := l.items[:0]
	removed := false
	for _, item := range l.items {
		if item.ID().Equals(itemID) {
			removed = true
			continue
		}
		kept = append(kept, item)
	}

	if !removed {
		return false
	}

	l.items = kept
	l.touch()

	l.addEvent(events.NewItemRemoved(l.id.String(), itemID.String(), l.updatedAt))

	return true
}

// ResolveItem sets the solved flag on the item with the given id. An unknown
// id yields ErrItemNotFound. Setting the current value again reports no
// change.
func (l *List) ResolveItem(itemID valueobjects.ItemID, solved bool) (*entities.Item, bool, error) {
	item := l.findItem(itemID)
	if item == nil {
		return nil, false, ErrItemNotFound
	}

	if item.Solved() == solved {
		return item, false, nil
	}

	item.SetSolved(solved)
	l.touch()

	l.addEvent(events.NewItemResolved(l.id.String(), itemID.String(), solved, l.updatedAt))

	return item, true, nil
}

// Items returns a copy of the item sequence in insertion order
func (l *List) Items() []*entities.Item {
	items := make([]*entities.Item, len(l.items))
	copy(items, l.items)
	return items
}

// UnresolvedItems returns the items with solved == false, in stored order
func (l *List) UnresolvedItems() []*entities.Item {
	unresolved := make([]*entities.Item, 0, len(l.items))
	for _, item := range l.items {
		if !item.Solved() {
			unresolved = append(unresolved, item)
		}
	}
	return unresolved
}

// GetItem retrieves an item by id
func (l *List) GetItem(itemID valueobjects.ItemID) (*entities.Item, error) {
	item := l.findItem(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Validate ensures list invariants
func (l *List) Validate() error {
	seen := make(map[string]bool, len(l.members))
	for _, m := range l.members {
		if seen[m] {
			return errors.New("duplicate member entry")
		}
		seen[m] = true
	}

	itemIDs := make(map[string]bool, len(l.items))
	for _, item := range l.items {
		id := item.ID().String()
		if itemIDs[id] {
			return errors.New("duplicate item id")
		}
		itemIDs[id] = true
	}

	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (l *List) GetUncommittedEvents() []events.DomainEvent {
	uncommitted := make([]events.DomainEvent, len(l.events))
	copy(uncommitted, l.events)
	return uncommitted
}

// MarkEventsAsCommitted clears all uncommitted events
func (l *List) MarkEventsAsCommitted() {
	l.events = []events.DomainEvent{}
}

// Private helpers

func (l *List) addEvent(event events.DomainEvent) {
	l.events = append(l.events, event)
}

func (l *List) touch() {
	l.updatedAt = time.Now()
	l.version++
}

func (l *List) findItem(itemID valueobjects.ItemID) *entities.Item {
	for _, item := range l.items {
		if item.ID().Equals(itemID) {
			return item
		}
	}
	return nil
}
