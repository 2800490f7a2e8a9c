package handlers

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"shoplist-backend/application/commands"
	"shoplist-backend/application/ports"
	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/domain/core/policy"
	"shoplist-backend/domain/core/valueobjects"
	apperrors "shoplist-backend/pkg/errors"
)

// AddItemHandler handles AddItemCommand
type AddItemHandler struct {
	repo      ports.ListRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(repo ports.ListRepository, publisher ports.EventPublisher, logger *zap.Logger) *AddItemHandler {
	return &AddItemHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle appends a new unsolved item to the list; owner or member
func (h *AddItemHandler) Handle(ctx context.Context, cmd commands.AddItemCommand) error {
	list, err := loadAuthorized(ctx, h.repo, cmd.ListID, cmd.PrincipalID, policy.OpManageItems)
	if err != nil {
		return err
	}

	itemID, err := valueobjects.ParseItemID(cmd.ItemID)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if _, err := list.AddItem(itemID, cmd.Text); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := h.repo.Save(ctx, list); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}

	h.logger.Info("Item added",
		zap.String("listID", list.ID().String()),
		zap.String("itemID", cmd.ItemID),
	)

	publishEvents(ctx, h.publisher, list, h.logger)

	return nil
}

// RemoveItemHandler handles RemoveItemCommand
type RemoveItemHandler struct {
	repo      ports.ListRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(repo ports.ListRepository, publisher ports.EventPublisher, logger *zap.Logger) *RemoveItemHandler {
	return &RemoveItemHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle removes an item by id; owner or member. Removing an absent item is
// a success no-op and skips the store write.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd commands.RemoveItemCommand) error {
	list, err := loadAuthorized(ctx, h.repo, cmd.ListID, cmd.PrincipalID, policy.OpManageItems)
	if err != nil {
		return err
	}

	itemID, err := valueobjects.ParseItemID(cmd.ItemID)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if changed := list.RemoveItem(itemID); !changed {
		return nil
	}

	if err := h.repo.Save(ctx, list); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}

	publishEvents(ctx, h.publisher, list, h.logger)

	return nil
}

// ResolveItemHandler handles ResolveItemCommand
type ResolveItemHandler struct {
	repo      ports.ListRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewResolveItemHandler creates a new resolve item handler
func NewResolveItemHandler(repo ports.ListRepository, publisher ports.EventPublisher, logger *zap.Logger) *ResolveItemHandler {
	return &ResolveItemHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle sets the solved flag on an item; owner or member. An unknown item
// id yields NotFound. Setting the current value again skips the store write.
func (h *ResolveItemHandler) Handle(ctx context.Context, cmd commands.ResolveItemCommand) error {
	list, err := loadAuthorized(ctx, h.repo, cmd.ListID, cmd.PrincipalID, policy.OpManageItems)
	if err != nil {
		return err
	}

	itemID, err := valueobjects.ParseItemID(cmd.ItemID)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	_, changed, err := list.ResolveItem(itemID, cmd.Solved)
	if err != nil {
		if errors.Is(err, aggregates.ErrItemNotFound) {
			return apperrors.NewNotFoundError("item")
		}
		return err
	}
	if !changed {
		return nil
	}

	if err := h.repo.Save(ctx, list); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}

	publishEvents(ctx, h.publisher, list, h.logger)

	return nil
}
