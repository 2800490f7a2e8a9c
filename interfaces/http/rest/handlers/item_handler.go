package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shoplist-backend/application/commands"
	"shoplist-backend/application/commands/bus"
	"shoplist-backend/application/queries"
	querybus "shoplist-backend/application/queries/bus"
	"shoplist-backend/application/queries/models"
	"shoplist-backend/pkg/auth"
	"shoplist-backend/pkg/common"
	"shoplist-backend/pkg/utils"
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	awid       string
	logger     *zap.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	awid string,
	logger *zap.Logger,
) *ItemHandler {
	return &ItemHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		awid:       awid,
		logger:     logger,
	}
}

func (h *ItemHandler) principal(w http.ResponseWriter, r *http.Request) (*auth.Principal, bool) {
	principal, err := auth.GetPrincipalFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, h.awid, "shoplist/notAuthenticated", "User not found.")
		return nil, false
	}
	return principal, true
}

// AddItemRequest represents the request body for adding an item
type AddItemRequest struct {
	ListID string `json:"listId" validate:"required"`
	Text   string `json:"text" validate:"required,min=1,max=500"`
}

// Add handles POST /item/add
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/item/add", "Missing listId or text.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/item/add", "Missing listId or text.")
		return
	}

	itemID := uuid.New().String()

	cmd := commands.AddItemCommand{
		ListID:      req.ListID,
		PrincipalID: principal.ID,
		ItemID:      itemID,
		Text:        req.Text,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to add item",
			zap.String("listID", req.ListID),
			zap.Error(err),
		)
		common.RespondAppError(w, h.awid, "shoplist/item/add", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"listId": req.ListID,
		"item": models.ItemView{
			ID:     itemID,
			Text:   req.Text,
			Solved: false,
		},
	})
}

// RemoveItemRequest represents the request body for removing an item
type RemoveItemRequest struct {
	ListID string `json:"listId" validate:"required"`
	ItemID string `json:"itemId" validate:"required"`
}

// Remove handles POST /item/remove
func (h *ItemHandler) Remove(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req RemoveItemRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/item/remove", "Missing IDs.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/item/remove", "Missing IDs.")
		return
	}

	cmd := commands.RemoveItemCommand{
		ListID:      req.ListID,
		PrincipalID: principal.ID,
		ItemID:      req.ItemID,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, h.awid, "shoplist/item/remove", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"listId":        req.ListID,
		"removedItemId": req.ItemID,
	})
}

// ResolveItemRequest represents the request body for resolving an item
type ResolveItemRequest struct {
	ListID string `json:"listId" validate:"required"`
	ItemID string `json:"itemId" validate:"required"`
	Solved *bool  `json:"solved" validate:"required"`
}

// Resolve handles POST /item/resolve
func (h *ItemHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req ResolveItemRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/item/resolve", "Missing fields.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil || req.Solved == nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/item/resolve", "Missing fields.")
		return
	}

	cmd := commands.ResolveItemCommand{
		ListID:      req.ListID,
		PrincipalID: principal.ID,
		ItemID:      req.ItemID,
		Solved:      *req.Solved,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, h.awid, "shoplist/item/resolve", err)
		return
	}

	view, err := fetchListView(r, h.queryBus, req.ListID, principal.ID)
	if err != nil {
		common.RespondAppError(w, h.awid, "shoplist/item/resolve", err)
		return
	}

	var resolved *models.ItemView
	for i := range view.Items {
		if view.Items[i].ID == req.ItemID {
			resolved = &view.Items[i]
			break
		}
	}
	if resolved == nil {
		common.RespondError(w, http.StatusNotFound, h.awid, "shoplist/item/resolve", "item not found")
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"listId": req.ListID,
		"item":   *resolved,
	})
}

// ListItems handles GET /item/list?listId=&filter=
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	listID := r.URL.Query().Get("listId")
	if listID == "" {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/item/list", "Missing list ID.")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListItemsQuery{
		ListID:      listID,
		PrincipalID: principal.ID,
		Filter:      r.URL.Query().Get("filter"),
	})
	if err != nil {
		common.RespondAppError(w, h.awid, "shoplist/item/list", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"listId": listID,
		"items":  result.([]models.ItemView),
	})
}
