package command

import (
	"fmt"
	"time"

	"github.com/traceright/dataset-service/internal/user/domain"
	"github.com/traceright/dataset-service/pkg/apperr"
)

// SetRoleCommand changes a user's role, addressed by email. It consults
// the same profile-record gate as every other privileged operation.
type SetRoleCommand struct {
	CallerID uint
	Email    string
	Role     string
}

// SetRoleHandler handles the set role command.
type SetRoleHandler struct {
	repo domain.UserRepository
}

// NewSetRoleHandler creates a new set role handler.
func NewSetRoleHandler(repo domain.UserRepository) *SetRoleHandler {
	return &SetRoleHandler{repo: repo}
}

// Handle executes the set role command.
func (h *SetRoleHandler) Handle(cmd SetRoleCommand) (*domain.User, error) {
	if cmd.CallerID == 0 {
		return nil, fmt.Errorf("role change requires a caller identity: %w", apperr.ErrUnauthenticated)
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required: %w", apperr.ErrInvalidArgument)
	}
	if cmd.Role != domain.RoleUser && cmd.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("invalid role %q: %w", cmd.Role, apperr.ErrInvalidArgument)
	}

	caller, err := h.repo.FindByID(cmd.CallerID)
	if err != nil || !caller.IsAdmin() {
		return nil, fmt.Errorf("caller %d is not an admin: %w", cmd.CallerID, apperr.ErrPermissionDenied)
	}

	target, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("no user with email %s", cmd.Email)
	}

	target.Role = cmd.Role
	target.Admin = cmd.Role == domain.RoleAdmin
	target.UpdatedAt = time.Now()

	if err := h.repo.Update(target); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	return target, nil
}
