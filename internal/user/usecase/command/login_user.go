package command

import (
	"fmt"

	"github.com/traceright/dataset-service/internal/user/domain"
	"github.com/traceright/dataset-service/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login user command
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	user, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}
	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{Token: token, User: user}, nil
}
