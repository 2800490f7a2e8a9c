package models

import (
	"time"

	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/domain/core/entities"
)

// ItemView is the read model for a single item
type ItemView struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Solved bool   `json:"solved"`
}

// ListView is the read model for a list aggregate, shaped for transport
type ListView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	OwnerID   string     `json:"ownerId"`
	Members   []string   `json:"members"`
	Items     []ItemView `json:"items"`
	Archived  bool       `json:"archived"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ItemViewFrom projects a single item entity
func ItemViewFrom(item *entities.Item) ItemView {
	return ItemView{
		ID:     item.ID().String(),
		Text:   item.Text(),
		Solved: item.Solved(),
	}
}

// ItemViewsFrom projects a slice of item entities, preserving order
func ItemViewsFrom(items []*entities.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemViewFrom(item))
	}
	return views
}

// ListViewFrom projects a list aggregate into its read model
func ListViewFrom(list *aggregates.List) *ListView {
	return &ListView{
		ID:        list.ID().String(),
		Name:      list.Name(),
		OwnerID:   list.OwnerID(),
		Members:   list.Members(),
		Items:     ItemViewsFrom(list.Items()),
		Archived:  list.Archived(),
		CreatedAt: list.CreatedAt(),
		UpdatedAt: list.UpdatedAt(),
	}
}
