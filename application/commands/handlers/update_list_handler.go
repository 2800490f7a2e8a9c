package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shoplist-backend/application/commands"
	"shoplist-backend/application/ports"
	"shoplist-backend/domain/core/policy"
	apperrors "shoplist-backend/pkg/errors"
)

// RenameListHandler handles RenameListCommand
type RenameListHandler struct {
	repo      ports.ListRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewRenameListHandler creates a new rename handler
func NewRenameListHandler(repo ports.ListRepository, publisher ports.EventPublisher, logger *zap.Logger) *RenameListHandler {
	return &RenameListHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle renames the list; owner only
func (h *RenameListHandler) Handle(ctx context.Context, cmd commands.RenameListCommand) error {
	list, err := loadAuthorized(ctx, h.repo, cmd.ListID, cmd.PrincipalID, policy.OpRename)
	if err != nil {
		return err
	}

	if err := list.Rename(cmd.Name); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := h.repo.Save(ctx, list); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}

	publishEvents(ctx, h.publisher, list, h.logger)

	return nil
}

// SetArchivedHandler handles SetArchivedCommand
type SetArchivedHandler struct {
	repo      ports.ListRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewSetArchivedHandler creates a new archive handler
func NewSetArchivedHandler(repo ports.ListRepository, publisher ports.EventPublisher, logger *zap.Logger) *SetArchivedHandler {
	return &SetArchivedHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle sets the archival flag; owner only. Setting the current value
// again skips the store write entirely.
func (h *SetArchivedHandler) Handle(ctx context.Context, cmd commands.SetArchivedCommand) error {
	list, err := loadAuthorized(ctx, h.repo, cmd.ListID, cmd.PrincipalID, policy.OpArchive)
	if err != nil {
		return err
	}

	if changed := list.SetArchived(cmd.Archived); !changed {
		return nil
	}

	if err := h.repo.Save(ctx, list); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}

	publishEvents(ctx, h.publisher, list, h.logger)

	return nil
}
