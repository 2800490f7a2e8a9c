package entities

import (
	"errors"
	"time"

	"shoplist-backend/domain/core/valueobjects"
)

// Item is a line entry owned exclusively by its parent list. It has no
// identity or lifecycle outside the list aggregate.
type Item struct {
	id      valueobjects.ItemID
	text    string
	solved  bool
	addedAt time.Time
}

// NewItem creates an item with a freshly assigned id and solved=false
func NewItem(id valueobjects.ItemID, text string) (*Item, error) {
	if id.IsZero() {
		return nil, errors.New("item id required")
	}
	if text == "" {
		return nil, errors.New("item text required")
	}

	return &Item{
		id:      id,
		text:    text,
		solved:  false,
		addedAt: time.Now(),
	}, nil
}

// ReconstructItem recreates an item from stored data
func ReconstructItem(id valueobjects.ItemID, text string, solved bool, addedAt time.Time) *Item {
	return &Item{
		id:      id,
		text:    text,
		solved:  solved,
		addedAt: addedAt,
	}
}

// ID returns the item's identifier
func (i *Item) ID() valueobjects.ItemID {
	return i.id
}

// Text returns the item's text. Text is fixed at creation; there is no
// update-text operation.
func (i *Item) Text() string {
	return i.text
}

// Solved reports whether the item has been resolved
func (i *Item) Solved() bool {
	return i.solved
}

// AddedAt returns when the item was added to its list
func (i *Item) AddedAt() time.Time {
	return i.addedAt
}

// SetSolved marks the item resolved or unresolved
func (i *Item) SetSolved(solved bool) {
	i.solved = solved
}
