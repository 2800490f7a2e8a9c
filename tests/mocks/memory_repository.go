package mocks

import (
	"context"
	"sync"

	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/domain/core/entities"
	"shoplist-backend/domain/core/valueobjects"
	apperrors "shoplist-backend/pkg/errors"
)

// MemoryListRepository is an in-memory ListRepository for integration-style
// tests. It enforces the same version condition as the DynamoDB
// implementation so conflict behavior can be exercised without a store.
type MemoryListRepository struct {
	mu    sync.RWMutex
	lists map[string]*storedList
}

type storedList struct {
	list    *aggregates.List
	version int
}

// NewMemoryListRepository creates an empty in-memory repository
func NewMemoryListRepository() *MemoryListRepository {
	return &MemoryListRepository{
		lists: make(map[string]*storedList),
	}
}

// cloneItems deep-copies items so stored state never shares Item pointers
// with aggregates handed to callers
func cloneItems(items []*entities.Item) []*entities.Item {
	cloned := make([]*entities.Item, 0, len(items))
	for _, item := range items {
		cloned = append(cloned, entities.ReconstructItem(item.ID(), item.Text(), item.Solved(), item.AddedAt()))
	}
	return cloned
}

func (r *MemoryListRepository) Save(ctx context.Context, list *aggregates.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := list.ID().String()
	existing, ok := r.lists[key]

	if list.PersistedVersion() == 0 {
		if ok {
			return apperrors.NewConflictError("list already exists")
		}
	} else if !ok || existing.version != list.PersistedVersion() {
		return apperrors.NewConflictError("list was modified concurrently")
	}

	snapshot, err := aggregates.ReconstructList(
		list.ID(),
		list.Name(),
		list.OwnerID(),
		list.Members(),
		cloneItems(list.Items()),
		list.Archived(),
		list.CreatedAt(),
		list.UpdatedAt(),
		list.Version(),
	)
	if err != nil {
		return err
	}

	r.lists[key] = &storedList{list: snapshot, version: list.Version()}
	return nil
}

func (r *MemoryListRepository) GetByID(ctx context.Context, id valueobjects.ListID) (*aggregates.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.lists[id.String()]
	if !ok {
		return nil, apperrors.NewNotFoundError("list")
	}

	list := stored.list
	return aggregates.ReconstructList(
		list.ID(),
		list.Name(),
		list.OwnerID(),
		list.Members(),
		cloneItems(list.Items()),
		list.Archived(),
		list.CreatedAt(),
		list.UpdatedAt(),
		list.Version(),
	)
}

func (r *MemoryListRepository) FindByPrincipal(ctx context.Context, principalID string) ([]*aggregates.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*aggregates.List{}
	for _, stored := range r.lists {
		if stored.list.IsOwner(principalID) || stored.list.HasMember(principalID) {
			copy, err := aggregates.ReconstructList(
				stored.list.ID(),
				stored.list.Name(),
				stored.list.OwnerID(),
				stored.list.Members(),
				cloneItems(stored.list.Items()),
				stored.list.Archived(),
				stored.list.CreatedAt(),
				stored.list.UpdatedAt(),
				stored.list.Version(),
			)
			if err != nil {
				return nil, err
			}
			result = append(result, copy)
		}
	}

	return result, nil
}

func (r *MemoryListRepository) Delete(ctx context.Context, id valueobjects.ListID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, ok := r.lists[key]; !ok {
		return apperrors.NewNotFoundError("list")
	}

	delete(r.lists, key)
	return nil
}
