package command

import (
	"fmt"
	"time"

	"github.com/traceright/dataset-service/internal/user/domain"
	"github.com/traceright/dataset-service/pkg/apperr"
)

// SetAdminCommand grants or revokes a user's admin privilege. Role and
// flag are written together so the two historical markers of the privilege
// can never disagree.
type SetAdminCommand struct {
	CallerID     uint
	TargetUserID uint
	IsAdmin      bool
}

// SetAdminHandler handles the set admin command.
type SetAdminHandler struct {
	repo domain.UserRepository
}

// NewSetAdminHandler creates a new set admin handler.
func NewSetAdminHandler(repo domain.UserRepository) *SetAdminHandler {
	return &SetAdminHandler{repo: repo}
}

// Handle executes the set admin command. The caller must already hold the
// admin privilege; the check reads the caller's profile and fails closed.
func (h *SetAdminHandler) Handle(cmd SetAdminCommand) (*domain.User, error) {
	if cmd.CallerID == 0 {
		return nil, fmt.Errorf("role change requires a caller identity: %w", apperr.ErrUnauthenticated)
	}
	if cmd.TargetUserID == 0 {
		return nil, fmt.Errorf("target user id is required: %w", apperr.ErrInvalidArgument)
	}

	caller, err := h.repo.FindByID(cmd.CallerID)
	if err != nil || !caller.IsAdmin() {
		return nil, fmt.Errorf("caller %d is not an admin: %w", cmd.CallerID, apperr.ErrPermissionDenied)
	}

	target, err := h.repo.FindByID(cmd.TargetUserID)
	if err != nil {
		return nil, fmt.Errorf("target user not found")
	}

	target.Admin = cmd.IsAdmin
	if cmd.IsAdmin {
		target.Role = domain.RoleAdmin
	} else {
		target.Role = domain.RoleUser
	}
	target.UpdatedAt = time.Now()

	if err := h.repo.Update(target); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return target, nil
}
