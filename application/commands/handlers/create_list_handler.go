package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shoplist-backend/application/commands"
	"shoplist-backend/application/ports"
	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/domain/core/valueobjects"
	apperrors "shoplist-backend/pkg/errors"
)

// CreateListHandler handles CreateListCommand
type CreateListHandler struct {
	repo      ports.ListRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewCreateListHandler creates a new create list handler
func NewCreateListHandler(repo ports.ListRepository, publisher ports.EventPublisher, logger *zap.Logger) *CreateListHandler {
	return &CreateListHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle creates the list aggregate and persists it. The creator becomes
// the owner; members and items start empty.
func (h *CreateListHandler) Handle(ctx context.Context, cmd commands.CreateListCommand) error {
	id, err := valueobjects.ParseListID(cmd.ListID)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	list, err := aggregates.NewList(id, cmd.Name, cmd.OwnerID)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := h.repo.Save(ctx, list); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}

	h.logger.Info("List created",
		zap.String("listID", list.ID().String()),
		zap.String("ownerID", list.OwnerID()),
	)

	publishEvents(ctx, h.publisher, list, h.logger)

	return nil
}
