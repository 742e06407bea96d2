package query

import (
	"github.com/traceright/dataset-service/internal/user/domain"
)

// CheckAdminQuery asks whether a user holds the admin privilege.
type CheckAdminQuery struct {
	UserID uint
}

// CheckAdminHandler is the authorization gate backing all privileged
// operations. It reads the profile record fresh on every check and fails
// closed: a missing profile or a lookup error is never authorized.
type CheckAdminHandler struct {
	repo domain.UserRepository
}

// NewCheckAdminHandler creates a new check admin handler.
func NewCheckAdminHandler(repo domain.UserRepository) *CheckAdminHandler {
	return &CheckAdminHandler{repo: repo}
}

// Handle executes the check.
func (h *CheckAdminHandler) Handle(q CheckAdminQuery) (bool, error) {
	if q.UserID == 0 {
		return false, nil
	}
	user, err := h.repo.FindByID(q.UserID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}
