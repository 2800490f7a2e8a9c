package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"shoplist-backend/application/commands"
	"shoplist-backend/application/ports"
	"shoplist-backend/domain/core/policy"
	"shoplist-backend/domain/events"
)

// DeleteListHandler handles DeleteListCommand
type DeleteListHandler struct {
	repo      ports.ListRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewDeleteListHandler creates a new delete handler
func NewDeleteListHandler(repo ports.ListRepository, publisher ports.EventPublisher, logger *zap.Logger) *DeleteListHandler {
	return &DeleteListHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle destroys the list and all contained items; owner only. The store
// delete is a single document removal, so the item cascade is atomic. A
// second delete of the same id yields NotFound.
func (h *DeleteListHandler) Handle(ctx context.Context, cmd commands.DeleteListCommand) error {
	list, err := loadAuthorized(ctx, h.repo, cmd.ListID, cmd.PrincipalID, policy.OpDelete)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(ctx, list.ID()); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	h.logger.Info("List deleted",
		zap.String("listID", list.ID().String()),
		zap.String("ownerID", list.OwnerID()),
	)

	if h.publisher != nil {
		event := events.NewListDeleted(list.ID().String(), list.OwnerID(), time.Now())
		if err := h.publisher.Publish(ctx, event); err != nil {
			h.logger.Warn("Failed to publish delete event",
				zap.String("listID", list.ID().String()),
				zap.Error(err),
			)
		}
	}

	return nil
}
