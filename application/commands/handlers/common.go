package handlers

import (
	"context"

	"go.uber.org/zap"

	"shoplist-backend/application/ports"
	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/domain/core/policy"
	"shoplist-backend/domain/core/valueobjects"
	"shoplist-backend/pkg/auth"
	apperrors "shoplist-backend/pkg/errors"
)

// loadAuthorized loads the aggregate and checks the access policy before
// any mutation. A denied request never reaches the mutation path.
func loadAuthorized(
	ctx context.Context,
	repo ports.ListRepository,
	listID string,
	principalID string,
	op policy.Operation,
) (*aggregates.List, error) {
	id, err := valueobjects.ParseListID(listID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	list, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(op, list, &auth.Principal{ID: principalID}); err != nil {
		return nil, err
	}

	return list, nil
}

// publishEvents flushes the aggregate's uncommitted events after a
// successful save. Publishing is best-effort; failures are logged and never
// surfaced to the caller.
func publishEvents(ctx context.Context, publisher ports.EventPublisher, list *aggregates.List, logger *zap.Logger) {
	uncommitted := list.GetUncommittedEvents()
	if len(uncommitted) == 0 {
		return
	}

	if publisher != nil {
		if err := publisher.PublishBatch(ctx, uncommitted); err != nil {
			logger.Warn("Failed to publish domain events",
				zap.String("listID", list.ID().String()),
				zap.Int("count", len(uncommitted)),
				zap.Error(err),
			)
		}
	}

	list.MarkEventsAsCommitted()
}
