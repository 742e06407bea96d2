package query

import (
	"fmt"

	"github.com/traceright/dataset-service/internal/user/domain"
)

// GetUserQuery represents the query to get a user by id.
type GetUserQuery struct {
	UserID uint
}

// GetUserHandler handles the get user query.
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler.
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query.
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	if q.UserID == 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	user, err := h.repo.FindByID(q.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}
