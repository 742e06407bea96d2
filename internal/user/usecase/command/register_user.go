package command

import (
	"fmt"
	"time"

	"github.com/traceright/dataset-service/internal/user/domain"
	"github.com/traceright/dataset-service/pkg/auth"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Username string
	Email    string
	Password string
	FullName string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}
	if cmd.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}

	if existing, _ := h.repo.FindByUsername(cmd.Username); existing != nil {
		return nil, fmt.Errorf("username already exists")
	}
	if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
		return nil, fmt.Errorf("email already exists")
	}

	hashed, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:  cmd.Username,
		Email:     cmd.Email,
		Password:  hashed,
		FullName:  cmd.FullName,
		Role:      domain.RoleUser,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
