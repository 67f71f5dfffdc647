package command

import (
	"context"
	"fmt"

	"github.com/vastrika/storefront/internal/user/domain"
	"github.com/vastrika/storefront/pkg/auth"
)

// UpdateUserCommand represents the command to update a user's profile.
// Empty fields are left unchanged.
type UpdateUserCommand struct {
	ID       uint
	Email    string
	FullName string
	Phone    string
	Address  string
	Password string
}

// UpdateUserHandler handles user profile updates
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Email != "" && cmd.Email != user.Email {
		if existing, _ := h.repo.FindByEmail(ctx, cmd.Email); existing != nil {
			return nil, fmt.Errorf("email already exists")
		}
		user.Email = cmd.Email
	}
	if cmd.FullName != "" {
		user.FullName = cmd.FullName
	}
	if cmd.Phone != "" {
		user.Phone = cmd.Phone
	}
	if cmd.Address != "" {
		user.Address = cmd.Address
	}
	if cmd.Password != "" {
		if len(cmd.Password) < 6 {
			return nil, fmt.Errorf("password must be at least 6 characters")
		}
		hashed, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
