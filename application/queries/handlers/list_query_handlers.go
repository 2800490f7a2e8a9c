package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shoplist-backend/application/ports"
	"shoplist-backend/application/queries"
	"shoplist-backend/application/queries/models"
	"shoplist-backend/domain/core/aggregates"
	"shoplist-backend/domain/core/policy"
	"shoplist-backend/domain/core/valueobjects"
	"shoplist-backend/pkg/auth"
	apperrors "shoplist-backend/pkg/errors"
)

// loadReadable loads the aggregate and checks read access. A list the
// principal cannot read behaves exactly like one they can: the policy check
// runs after the load so a denied read still distinguishes 403 from 404.
func loadReadable(ctx context.Context, repo ports.ListRepository, listID, principalID string) (*aggregates.List, error) {
	id, err := valueobjects.ParseListID(listID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	list, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(policy.OpRead, list, &auth.Principal{ID: principalID}); err != nil {
		return nil, err
	}

	return list, nil
}

// GetListHandler handles GetListQuery
type GetListHandler struct {
	repo   ports.ListRepository
	logger *zap.Logger
}

// NewGetListHandler creates a new get list handler
func NewGetListHandler(repo ports.ListRepository, logger *zap.Logger) *GetListHandler {
	return &GetListHandler{repo: repo, logger: logger}
}

// Handle returns the full list view including items
func (h *GetListHandler) Handle(ctx context.Context, q queries.GetListQuery) (*models.ListView, error) {
	list, err := loadReadable(ctx, h.repo, q.ListID, q.PrincipalID)
	if err != nil {
		return nil, err
	}

	return models.ListViewFrom(list), nil
}

// ListListsHandler handles ListListsQuery
type ListListsHandler struct {
	repo   ports.ListRepository
	logger *zap.Logger
}

// NewListListsHandler creates a new list lists handler
func NewListListsHandler(repo ports.ListRepository, logger *zap.Logger) *ListListsHandler {
	return &ListListsHandler{repo: repo, logger: logger}
}

// Handle returns every list the principal owns or has joined. A principal
// with no lists gets an empty slice, not an error.
func (h *ListListsHandler) Handle(ctx context.Context, q queries.ListListsQuery) ([]*models.ListView, error) {
	lists, err := h.repo.FindByPrincipal(ctx, q.PrincipalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}

	views := make([]*models.ListView, 0, len(lists))
	for _, list := range lists {
		views = append(views, models.ListViewFrom(list))
	}

	h.logger.Debug("Lists fetched",
		zap.String("principalID", q.PrincipalID),
		zap.Int("count", len(views)),
	)

	return views, nil
}

// ListItemsHandler handles ListItemsQuery
type ListItemsHandler struct {
	repo   ports.ListRepository
	logger *zap.Logger
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo ports.ListRepository, logger *zap.Logger) *ListItemsHandler {
	return &ListItemsHandler{repo: repo, logger: logger}
}

// Handle returns the list's items in insertion order, optionally narrowed to
// the unresolved subset
func (h *ListItemsHandler) Handle(ctx context.Context, q queries.ListItemsQuery) ([]models.ItemView, error) {
	list, err := loadReadable(ctx, h.repo, q.ListID, q.PrincipalID)
	if err != nil {
		return nil, err
	}

	if q.Filter == queries.FilterUnresolved {
		return models.ItemViewsFrom(list.UnresolvedItems()), nil
	}

	return models.ItemViewsFrom(list.Items()), nil
}
