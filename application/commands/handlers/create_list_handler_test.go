package handlers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shoplist-backend/application/commands"
	"shoplist-backend/domain/core/aggregates"
	apperrors "shoplist-backend/pkg/errors"
	"shoplist-backend/tests/fixtures"
	"shoplist-backend/tests/mocks"
)

func TestCreateListHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.MockListRepository)
	mockPublisher := new(mocks.MockEventPublisher)
	logger := zap.NewNop()

	cmd := commands.CreateListCommand{
		ListID:  uuid.New().String(),
		OwnerID: "user123",
		Name:    "Groceries",
	}

	var saved *aggregates.List
	mockRepo.On("Save", ctx, mock.AnythingOfType("*aggregates.List")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*aggregates.List)
		}).
		Return(nil)
	mockPublisher.On("PublishBatch", ctx, mock.AnythingOfType("[]events.DomainEvent")).Return(nil)

	handler := NewCreateListHandler(mockRepo, mockPublisher, logger)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Groceries", saved.Name())
	assert.Equal(t, "user123", saved.OwnerID())
	assert.Empty(t, saved.Members())
	assert.Empty(t, saved.Items())
	assert.False(t, saved.Archived())
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestCreateListHandler_Handle_InvalidID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.MockListRepository)
	mockPublisher := new(mocks.MockEventPublisher)

	handler := NewCreateListHandler(mockRepo, mockPublisher, zap.NewNop())
	err := handler.Handle(ctx, commands.CreateListCommand{
		ListID:  "not-a-uuid",
		OwnerID: "user123",
		Name:    "Groceries",
	})

	assert.True(t, apperrors.IsValidation(err))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateListHandler_Handle_SaveFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.MockListRepository)
	mockPublisher := new(mocks.MockEventPublisher)

	mockRepo.On("Save", ctx, mock.AnythingOfType("*aggregates.List")).
		Return(apperrors.NewDatabaseError("save list", assert.AnError))

	handler := NewCreateListHandler(mockRepo, mockPublisher, zap.NewNop())
	err := handler.Handle(ctx, commands.CreateListCommand{
		ListID:  uuid.New().String(),
		OwnerID: "user123",
		Name:    "Groceries",
	})

	assert.Error(t, err)
	mockPublisher.AssertNotCalled(t, "PublishBatch", mock.Anything, mock.Anything)
}

func TestRenameListHandler_Handle(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("owner renames", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		mockPublisher := new(mocks.MockEventPublisher)
		list := fixtures.NewListBuilder().WithOwner("user123").WithName("Old").MustBuild()

		mockRepo.On("GetByID", ctx, list.ID()).Return(list, nil)
		mockRepo.On("Save", ctx, mock.AnythingOfType("*aggregates.List")).Return(nil)
		mockPublisher.On("PublishBatch", ctx, mock.AnythingOfType("[]events.DomainEvent")).Return(nil)

		handler := NewRenameListHandler(mockRepo, mockPublisher, logger)
		err := handler.Handle(ctx, commands.RenameListCommand{
			ListID:      list.ID().String(),
			PrincipalID: "user123",
			Name:        "New",
		})

		require.NoError(t, err)
		assert.Equal(t, "New", list.Name())
		mockRepo.AssertExpectations(t)
	})

	t.Run("member denied", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		mockPublisher := new(mocks.MockEventPublisher)
		list := fixtures.NewListBuilder().WithOwner("user123").WithMembers("user789").MustBuild()

		mockRepo.On("GetByID", ctx, list.ID()).Return(list, nil)

		handler := NewRenameListHandler(mockRepo, mockPublisher, logger)
		err := handler.Handle(ctx, commands.RenameListCommand{
			ListID:      list.ID().String(),
			PrincipalID: "user789",
			Name:        "New",
		})

		assert.True(t, apperrors.IsForbidden(err))
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing list", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		mockPublisher := new(mocks.MockEventPublisher)
		list := fixtures.NewListBuilder().MustBuild()

		mockRepo.On("GetByID", ctx, list.ID()).Return(nil, apperrors.NewNotFoundError("list"))

		handler := NewRenameListHandler(mockRepo, mockPublisher, logger)
		err := handler.Handle(ctx, commands.RenameListCommand{
			ListID:      list.ID().String(),
			PrincipalID: "user123",
			Name:        "New",
		})

		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestSetArchivedHandler_Handle(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("archive", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		mockPublisher := new(mocks.MockEventPublisher)
		list := fixtures.NewListBuilder().WithOwner("user123").MustBuild()

		mockRepo.On("GetByID", ctx, list.ID()).Return(list, nil)
		mockRepo.On("Save", ctx, mock.AnythingOfType("*aggregates.List")).Return(nil)
		mockPublisher.On("PublishBatch", ctx, mock.AnythingOfType("[]events.DomainEvent")).Return(nil)

		handler := NewSetArchivedHandler(mockRepo, mockPublisher, logger)
		err := handler.Handle(ctx, commands.SetArchivedCommand{
			ListID:      list.ID().String(),
			PrincipalID: "user123",
			Archived:    true,
		})

		require.NoError(t, err)
		assert.True(t, list.Archived())
	})

	t.Run("no-op skips save", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		mockPublisher := new(mocks.MockEventPublisher)
		list := fixtures.NewListBuilder().WithOwner("user123").WithArchived(true).MustBuild()

		mockRepo.On("GetByID", ctx, list.ID()).Return(list, nil)

		handler := NewSetArchivedHandler(mockRepo, mockPublisher, logger)
		err := handler.Handle(ctx, commands.SetArchivedCommand{
			ListID:      list.ID().String(),
			PrincipalID: "user123",
			Archived:    true,
		})

		require.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestDeleteListHandler_Handle(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("owner deletes", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		mockPublisher := new(mocks.MockEventPublisher)
		list := fixtures.NewListBuilder().WithOwner("user123").MustBuild()

		mockRepo.On("GetByID", ctx, list.ID()).Return(list, nil)
		mockRepo.On("Delete", ctx, list.ID()).Return(nil)
		mockPublisher.On("Publish", ctx, mock.AnythingOfType("events.ListDeleted")).Return(nil)

		handler := NewDeleteListHandler(mockRepo, mockPublisher, logger)
		err := handler.Handle(ctx, commands.DeleteListCommand{
			ListID:      list.ID().String(),
			PrincipalID: "user123",
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("member denied", func(t *testing.T) {
		mockRepo := new(mocks.MockListRepository)
		mockPublisher := new(mocks.MockEventPublisher)
		list := fixtures.NewListBuilder().WithOwner("user123").WithMembers("user789").MustBuild()

		mockRepo.On("GetByID", ctx, list.ID()).Return(list, nil)

		handler := NewDeleteListHandler(mockRepo, mockPublisher, logger)
		err := handler.Handle(ctx, commands.DeleteListCommand{
			ListID:      list.ID().String(),
			PrincipalID: "user789",
		})

		assert.True(t, apperrors.IsForbidden(err))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
