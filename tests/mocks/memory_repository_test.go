package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/domain/core/valueobjects"
	apperrors "shoplist-backend/pkg/errors"
)

func seedList(t *testing.T, repo *MemoryListRepository) valueobjects.ListID {
	t.Helper()

	list, err := aggregates.NewList(valueobjects.NewListID(), "Groceries", "user123")
	require.NoError(t, err)
	_, err = list.AddItem(valueobjects.NewItemID(), "Milk")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), list))
	return list.ID()
}

func TestMemoryListRepository_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryListRepository()
	listID := seedList(t, repo)

	// Mutating a loaded copy must not leak into stored state until Save
	loaded, err := repo.GetByID(ctx, listID)
	require.NoError(t, err)
	itemID := loaded.Items()[0].ID()

	_, changed, err := loaded.ResolveItem(itemID, true)
	require.NoError(t, err)
	require.True(t, changed)

	stored, err := repo.GetByID(ctx, listID)
	require.NoError(t, err)
	assert.False(t, stored.Items()[0].Solved())
}

func TestMemoryListRepository_FailedSaveLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryListRepository()
	listID := seedList(t, repo)

	first, err := repo.GetByID(ctx, listID)
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, listID)
	require.NoError(t, err)
	itemID := first.Items()[0].ID()

	// First writer wins
	_, _, err = first.ResolveItem(itemID, true)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	// Second writer loses the version check; its item mutation must not
	// have reached the store either
	require.NoError(t, second.Rename("Hijacked"))
	_, _, err = second.ResolveItem(itemID, true)
	require.NoError(t, err)

	err = repo.Save(ctx, second)
	assert.True(t, apperrors.IsConflict(err))

	stored, err := repo.GetByID(ctx, listID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", stored.Name())
	assert.True(t, stored.Items()[0].Solved())
}
