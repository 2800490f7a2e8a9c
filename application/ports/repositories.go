package ports

import (
	"context"

	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/domain/core/valueobjects"
	"shoplist-backend/domain/events"
)

// ListRepository is the persistence port for list aggregates. Every
// operation touches exactly one aggregate document; no cross-aggregate
// transactions exist.
type ListRepository interface {
	// Save persists the aggregate with a conditional write on its persisted
	// version; a concurrent writer that saved first causes a Conflict error.
	Save(ctx context.Context, list *aggregates.List) error

	// GetByID loads the aggregate or returns a NotFound error
	GetByID(ctx context.Context, id valueobjects.ListID) (*aggregates.List, error)

	// FindByPrincipal returns all lists the principal owns or has joined
	FindByPrincipal(ctx context.Context, principalID string) ([]*aggregates.List, error)

	// Delete removes the aggregate and all contained items; a missing or
	// already-deleted id yields a NotFound error.
	Delete(ctx context.Context, id valueobjects.ListID) error
}

// EventPublisher publishes domain events after a successful save. Publishing
// is best-effort; failures are logged, never surfaced to the caller.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
