package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shoplist-backend/application/queries"
	"shoplist-backend/domain/core/aggregates"
	apperrors "shoplist-backend/pkg/errors"
	"shoplist-backend/tests/fixtures"
	"shoplist-backend/tests/mocks"
)

func TestGetListHandler_Handle(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("member reads full projection", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		list := fixtures.NewListBuilder().
			WithOwner("user123").
			WithMembers("user789").
			WithName("Groceries").
			WithItem("Milk", false).
			WithItem("Eggs", true).
			MustBuild()

		mockRepo.On("GetByID", ctx, list.ID()).Return(list, nil)

		handler := NewGetListHandler(mockRepo, logger)
		view, err := handler.Handle(ctx, queries.GetListQuery{
			ListID:      list.ID().String(),
			PrincipalID: "user789",
		})

		require.NoError(t, err)
		assert.Equal(t, list.ID().String(), view.ID)
		assert.Equal(t, "Groceries", view.Name)
		assert.Equal(t, "user123", view.OwnerID)
		assert.Equal(t, []string{"user789"}, view.Members)
		require.Len(t, view.Items, 2)
		assert.Equal(t, "Milk", view.Items[0].Text)
		assert.True(t, view.Items[1].Solved)
	})

	t.Run("stranger denied", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		list := fixtures.NewListBuilder().WithOwner("user123").MustBuild()

		mockRepo.On("GetByID", ctx, list.ID()).Return(list, nil)

		handler := NewGetListHandler(mockRepo, logger)
		_, err := handler.Handle(ctx, queries.GetListQuery{
			ListID:      list.ID().String(),
			PrincipalID: "user456",
		})

		assert.True(t, apperrors.IsForbidden(err))
	})

	t.Run("missing list", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		list := fixtures.NewListBuilder().MustBuild()

		mockRepo.On("GetByID", ctx, list.ID()).Return(nil, apperrors.NewNotFoundError("list"))

		handler := NewGetListHandler(mockRepo, logger)
		_, err := handler.Handle(ctx, queries.GetListQuery{
			ListID:      list.ID().String(),
			PrincipalID: "user123",
		})

		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestListListsHandler_Handle(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("owned and joined lists", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		owned := fixtures.NewListBuilder().WithOwner("user123").WithName("Mine").MustBuild()
		joined := fixtures.NewListBuilder().WithOwner("user456").WithMembers("user123").WithName("Shared").MustBuild()

		mockRepo.On("FindByPrincipal", ctx, "user123").Return([]*aggregates.List{owned, joined}, nil)

		handler := NewListListsHandler(mockRepo, logger)
		views, err := handler.Handle(ctx, queries.ListListsQuery{PrincipalID: "user123"})

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Mine", views[0].Name)
		assert.Equal(t, "Shared", views[1].Name)
	})

	t.Run("no lists yields empty slice", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		mockRepo.On("FindByPrincipal", ctx, "user456").Return([]*aggregates.List{}, nil)

		handler := NewListListsHandler(mockRepo, logger)
		views, err := handler.Handle(ctx, queries.ListListsQuery{PrincipalID: "user456"})

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

func TestListItemsHandler_Handle(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	newSharedList := func() *aggregates.List {
		return fixtures.NewListBuilder().
			WithOwner("user123").
			WithMembers("user789").
			WithItem("Milk", false).
			WithItem("Eggs", true).
			WithItem("Bread", false).
			MustBuild()
	}

	t.Run("all items in stored order", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		list := newSharedList()
		mockRepo.On("GetByID", ctx, list.ID()).Return(list, nil)

		handler := NewListItemsHandler(mockRepo, logger)
		items, err := handler.Handle(ctx, queries.ListItemsQuery{
			ListID:      list.ID().String(),
			PrincipalID: "user789",
		})

		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Milk", items[0].Text)
		assert.Equal(t, "Eggs", items[1].Text)
		assert.Equal(t, "Bread", items[2].Text)
	})

	t.Run("unresolved filter", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		list := newSharedList()
		mockRepo.On("GetByID", ctx, list.ID()).Return(list, nil)

		handler := NewListItemsHandler(mockRepo, logger)
		items, err := handler.Handle(ctx, queries.ListItemsQuery{
			ListID:      list.ID().String(),
			PrincipalID: "user123",
			Filter:      queries.FilterUnresolved,
		})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Milk", items[0].Text)
		assert.Equal(t, "Bread", items[1].Text)
	})

	t.Run("stranger denied", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		list := newSharedList()
		mockRepo.On("GetByID", ctx, list.ID()).Return(list, nil)

		handler := NewListItemsHandler(mockRepo, logger)
		_, err := handler.Handle(ctx, queries.ListItemsQuery{
			ListID:      list.ID().String(),
			PrincipalID: "user456",
		})

		assert.True(t, apperrors.IsForbidden(err))
	})
}

func TestListItemsQuery_Validate(t *testing.T) {
	assert.Error(t, queries.ListItemsQuery{PrincipalID: "user123"}.Validate())
	assert.Error(t, queries.ListItemsQuery{ListID: "l1", PrincipalID: "user123", Filter: "bogus"}.Validate())
	assert.NoError(t, queries.ListItemsQuery{ListID: "l1", PrincipalID: "user123", Filter: "unresolved"}.Validate())
	assert.NoError(t, queries.ListItemsQuery{ListID: "l1", PrincipalID: "user123"}.Validate())
}
