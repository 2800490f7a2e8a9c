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

const maxBodyBytes = 1 << 20

// ListHandler handles list-related HTTP requests
type ListHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	awid       string
	logger     *zap.Logger
}

// NewListHandler creates a new list handler
func NewListHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	awid string,
	logger *zap.Logger,
) *ListHandler {
	return &ListHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		awid:       awid,
		logger:     logger,
	}
}

// fetchListView loads the current projection of a list for response payloads
func fetchListView(r *http.Request, queryBus *querybus.QueryBus, listID, principalID string) (*models.ListView, error) {
	result, err := queryBus.Ask(r.Context(), queries.GetListQuery{
		ListID:      listID,
		PrincipalID: principalID,
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.ListView), nil
}

// principal extracts the authenticated principal or writes a 401 envelope
func (h *ListHandler) principal(w http.ResponseWriter, r *http.Request) (*auth.Principal, bool) {
	principal, err := auth.GetPrincipalFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, h.awid, "shoplist/notAuthenticated", "User not found.")
		return nil, false
	}
	return principal, true
}

// CreateListRequest represents the request body for creating a list
type CreateListRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// Create handles POST /list/create
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req CreateListRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/create", "Missing list name.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/create", "Missing list name.")
		return
	}

	listID := uuid.New().String()

	cmd := commands.CreateListCommand{
		ListID:  listID,
		OwnerID: principal.ID,
		Name:    req.Name,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to create list",
			zap.String("ownerID", principal.ID),
			zap.Error(err),
		)
		common.RespondAppError(w, h.awid, "shoplist/list/create", err)
		return
	}

	view, err := fetchListView(r, h.queryBus, listID, principal.ID)
	if err != nil {
		common.RespondAppError(w, h.awid, "shoplist/list/create", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"id":       view.ID,
		"name":     view.Name,
		"ownerId":  view.OwnerID,
		"members":  view.Members,
		"items":    view.Items,
		"archived": view.Archived,
	})
}

// Get handles GET /list/get?id=
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	listID := r.URL.Query().Get("id")
	if listID == "" {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/get", "Missing list ID.")
		return
	}

	view, err := fetchListView(r, h.queryBus, listID, principal.ID)
	if err != nil {
		common.RespondAppError(w, h.awid, "shoplist/list/get", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"id":       view.ID,
		"name":     view.Name,
		"ownerId":  view.OwnerID,
		"members":  view.Members,
		"items":    view.Items,
		"archived": view.Archived,
	})
}

// List handles GET /list/list
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListListsQuery{
		PrincipalID: principal.ID,
	})
	if err != nil {
		common.RespondAppError(w, h.awid, "shoplist/list/list", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"lists": result.([]*models.ListView),
	})
}

// UpdateListRequest represents the request body for renaming a list
type UpdateListRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// Update handles POST /list/update
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req UpdateListRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/update", "Missing ID or name.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/update", "Missing ID or name.")
		return
	}

	cmd := commands.RenameListCommand{
		ListID:      req.ID,
		PrincipalID: principal.ID,
		Name:        req.Name,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, h.awid, "shoplist/list/update", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"id":   req.ID,
		"name": req.Name,
	})
}

// UpdateArchivedRequest represents the request body for archiving a list
type UpdateArchivedRequest struct {
	ID       string `json:"id" validate:"required"`
	Archived *bool  `json:"archived" validate:"required"`
}

// UpdateArchived handles POST /list/updateArchived
func (h *ListHandler) UpdateArchived(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req UpdateArchivedRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/updateArchived", "Missing ID or archived flag.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil || req.Archived == nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/updateArchived", "Missing ID or archived flag.")
		return
	}

	cmd := commands.SetArchivedCommand{
		ListID:      req.ID,
		PrincipalID: principal.ID,
		Archived:    *req.Archived,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, h.awid, "shoplist/list/updateArchived", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"id":       req.ID,
		"archived": *req.Archived,
	})
}

// DeleteListRequest represents the request body for deleting a list
type DeleteListRequest struct {
	ID string `json:"id" validate:"required"`
}

// Delete handles POST /list/delete
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req DeleteListRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/delete", "Missing list ID.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/delete", "Missing list ID.")
		return
	}

	cmd := commands.DeleteListCommand{
		ListID:      req.ID,
		PrincipalID: principal.ID,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, h.awid, "shoplist/list/delete", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"id":      req.ID,
		"deleted": true,
	})
}

// MemberRequest represents the request body for membership changes
type MemberRequest struct {
	ListID   string `json:"listId" validate:"required"`
	MemberID string `json:"memberId" validate:"required"`
}

// AddMember handles POST /list/addMember
func (h *ListHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req MemberRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/addMember", "Missing listId or memberId.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/addMember", "Missing listId or memberId.")
		return
	}

	cmd := commands.AddMemberCommand{
		ListID:      req.ListID,
		PrincipalID: principal.ID,
		MemberID:    req.MemberID,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, h.awid, "shoplist/list/addMember", err)
		return
	}

	view, err := fetchListView(r, h.queryBus, req.ListID, principal.ID)
	if err != nil {
		common.RespondAppError(w, h.awid, "shoplist/list/addMember", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"listId":   req.ListID,
		"memberId": req.MemberID,
		"members":  view.Members,
	})
}

// RemoveMember handles POST /list/removeMember
func (h *ListHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req MemberRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/removeMember", "Missing listId or memberId.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/removeMember", "Missing listId or memberId.")
		return
	}

	cmd := commands.RemoveMemberCommand{
		ListID:      req.ListID,
		PrincipalID: principal.ID,
		MemberID:    req.MemberID,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, h.awid, "shoplist/list/removeMember", err)
		return
	}

	view, err := fetchListView(r, h.queryBus, req.ListID, principal.ID)
	if err != nil {
		common.RespondAppError(w, h.awid, "shoplist/list/removeMember", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"listId":   req.ListID,
		"memberId": req.MemberID,
		"members":  view.Members,
	})
}

// LeaveListRequest represents the request body for leaving a list
type LeaveListRequest struct {
	ListID string `json:"listId" validate:"required"`
}

// LeaveList handles POST /list/leaveList
func (h *ListHandler) LeaveList(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req LeaveListRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/leaveList", "Missing listId.")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, h.awid, "shoplist/list/leaveList", "Missing listId.")
		return
	}

	cmd := commands.LeaveListCommand{
		ListID:      req.ListID,
		PrincipalID: principal.ID,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, h.awid, "shoplist/list/leaveList", err)
		return
	}

	common.RespondSuccess(w, h.awid, map[string]interface{}{
		"listId":     req.ListID,
		"leftUserId": principal.ID,
	})
}
