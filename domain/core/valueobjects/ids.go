package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// ListID uniquely identifies a shopping list aggregate
type ListID struct {
	value string
}

// NewListID creates a new random ListID
func NewListID() ListID {
	return ListID{value: uuid.New().String()}
}

// ParseListID validates and wraps an existing identifier
func ParseListID(value string) (ListID, error) {
	if value == "" {
		return ListID{}, errors.New("list id cannot be empty")
	}
	if _, err := uuid.Parse(value); err != nil {
		return ListID{}, errors.New("list id must be a valid UUID")
	}
	return ListID{value: value}, nil
}

// String returns the string representation
func (id ListID) String() string {
	return id.value
}

// Equals compares two list ids
func (id ListID) Equals(other ListID) bool {
	return id.value == other.value
}

// IsZero reports whether the id is unset
func (id ListID) IsZero() bool {
	return id.value == ""
}

// ItemID uniquely identifies an item within its parent list
type ItemID struct {
	value string
}

// NewItemID creates a new random ItemID
func NewItemID() ItemID {
	return ItemID{value: uuid.New().String()}
}

// ParseItemID validates and wraps an existing identifier
func ParseItemID(value string) (ItemID, error) {
	if value == "" {
		return ItemID{}, errors.New("item id cannot be empty")
	}
	if _, err := uuid.Parse(value); err != nil {
		return ItemID{}, errors.New("item id must be a valid UUID")
	}
	return ItemID{value: value}, nil
}

// String returns the string representation
func (id ItemID) String() string {
	return id.value
}

// Equals compares two item ids
func (id ItemID) Equals(other ItemID) bool {
	return id.value == other.value
}

// IsZero reports whether the id is unset
func (id ItemID) IsZero() bool {
	return id.value == ""
}
