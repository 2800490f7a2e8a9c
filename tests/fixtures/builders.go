package fixtures

import (
	"fmt"
	"time"

	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/domain/core/entities"
	"shoplist-backend/domain/core/valueobjects"
)

// ListBuilder helps create test lists with default values
type ListBuilder struct {
	id       valueobjects.ListID
	name     string
	ownerID  string
	members  []string
	items    []*entities.Item
	archived bool
	version  int
}

func NewListBuilder() *ListBuilder {
	return &ListBuilder{
		id:      valueobjects.NewListID(),
		name:    "Test List",
		ownerID: "user123",
		members: []string{},
		items:   []*entities.Item{},
		version: 1,
	}
}

func (b *ListBuilder) WithID(id string) *ListBuilder {
	b.id, _ = valueobjects.ParseListID(id)
	return b
}

func (b *ListBuilder) WithName(name string) *ListBuilder {
	b.name = name
	return b
}

func (b *ListBuilder) WithOwner(ownerID string) *ListBuilder {
	b.ownerID = ownerID
	return b
}

func (b *ListBuilder) WithMembers(members ...string) *ListBuilder {
	b.members = members
	return b
}

func (b *ListBuilder) WithItem(text string, solved bool) *ListBuilder {
	item := entities.ReconstructItem(valueobjects.NewItemID(), text, solved, time.Now())
	b.items = append(b.items, item)
	return b
}

func (b *ListBuilder) WithArchived(archived bool) *ListBuilder {
	b.archived = archived
	return b
}

func (b *ListBuilder) WithVersion(version int) *ListBuilder {
	b.version = version
	return b
}

func (b *ListBuilder) Build() (*aggregates.List, error) {
	now := time.Now()
	return aggregates.ReconstructList(
		b.id,
		b.name,
		b.ownerID,
		b.members,
		b.items,
		b.archived,
		now,
		now,
		b.version,
	)
}

func (b *ListBuilder) MustBuild() *aggregates.List {
	list, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build test list: %v", err))
	}
	return list
}
