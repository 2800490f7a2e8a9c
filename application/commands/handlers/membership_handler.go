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

// AddMemberHandler handles AddMemberCommand
type AddMemberHandler struct {
	repo      ports.ListRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewAddMemberHandler creates a new add member handler
func NewAddMemberHandler(repo ports.ListRepository, publisher ports.EventPublisher, logger *zap.Logger) *AddMemberHandler {
	return &AddMemberHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle adds a member to the list; owner only. Adding an existing member is
// a success no-op and skips the store write.
func (h *AddMemberHandler) Handle(ctx context.Context, cmd commands.AddMemberCommand) error {
	list, err := loadAuthorized(ctx, h.repo, cmd.ListID, cmd.PrincipalID, policy.OpManageMembers)
	if err != nil {
		return err
	}

	changed, err := list.AddMember(cmd.MemberID)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if !changed {
		return nil
	}

	if err := h.repo.Save(ctx, list); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}

	h.logger.Info("Member added",
		zap.String("listID", list.ID().String()),
		zap.String("memberID", cmd.MemberID),
	)

	publishEvents(ctx, h.publisher, list, h.logger)

	return nil
}

// RemoveMemberHandler handles RemoveMemberCommand
type RemoveMemberHandler struct {
	repo      ports.ListRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewRemoveMemberHandler creates a new remove member handler
func NewRemoveMemberHandler(repo ports.ListRepository, publisher ports.EventPublisher, logger *zap.Logger) *RemoveMemberHandler {
	return &RemoveMemberHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle removes a member from the list; owner only. Removing an absent
// member is a success no-op and skips the store write.
func (h *RemoveMemberHandler) Handle(ctx context.Context, cmd commands.RemoveMemberCommand) error {
	list, err := loadAuthorized(ctx, h.repo, cmd.ListID, cmd.PrincipalID, policy.OpManageMembers)
	if err != nil {
		return err
	}

	if changed := list.RemoveMember(cmd.MemberID); !changed {
		return nil
	}

	if err := h.repo.Save(ctx, list); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}

	h.logger.Info("Member removed",
		zap.String("listID", list.ID().String()),
		zap.String("memberID", cmd.MemberID),
	)

	publishEvents(ctx, h.publisher, list, h.logger)

	return nil
}

// LeaveListHandler handles LeaveListCommand
type LeaveListHandler struct {
	repo      ports.ListRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewLeaveListHandler creates a new leave list handler
func NewLeaveListHandler(repo ports.ListRepository, publisher ports.EventPublisher, logger *zap.Logger) *LeaveListHandler {
	return &LeaveListHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle removes the requesting principal from the membership set. The owner
// may leave without losing ownership; ownerID is never altered here.
func (h *LeaveListHandler) Handle(ctx context.Context, cmd commands.LeaveListCommand) error {
	list, err := loadAuthorized(ctx, h.repo, cmd.ListID, cmd.PrincipalID, policy.OpLeave)
	if err != nil {
		return err
	}

	if changed := list.Leave(cmd.PrincipalID); !changed {
		return nil
	}

	if err := h.repo.Save(ctx, list); err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}

	h.logger.Info("Member left list",
		zap.String("listID", list.ID().String()),
		zap.String("principalID", cmd.PrincipalID),
	)

	publishEvents(ctx, h.publisher, list, h.logger)

	return nil
}
