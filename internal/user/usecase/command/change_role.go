package command

import (
	"context"
	"fmt"

	"github.com/vastrika/storefront/internal/user/domain"
)

// ChangeRoleCommand represents the command to change a user's role
type ChangeRoleCommand struct {
	UserID uint
	Role   string
}

// ChangeRoleHandler handles role changes
type ChangeRoleHandler struct {
	repo domain.UserRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(repo domain.UserRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle executes the change role command
func (h *ChangeRoleHandler) Handle(ctx context.Context, cmd ChangeRoleCommand) (*domain.User, error) {
	if cmd.Role != domain.RoleUser && cmd.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("invalid role")
	}

	user, err := h.repo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	user.Role = cmd.Role
	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to change role: %w", err)
	}
	return user, nil
}
