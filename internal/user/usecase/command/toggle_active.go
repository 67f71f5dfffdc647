package command

import (
	"context"
	"fmt"

	"github.com/vastrika/storefront/internal/user/domain"
)

// ToggleActiveCommand represents the command to activate or deactivate a user
type ToggleActiveCommand struct {
	UserID   uint
	IsActive bool
}

// ToggleActiveHandler handles account activation toggles
type ToggleActiveHandler struct {
	repo domain.UserRepository
}

// NewToggleActiveHandler creates a new toggle active handler
func NewToggleActiveHandler(repo domain.UserRepository) *ToggleActiveHandler {
	return &ToggleActiveHandler{repo: repo}
}

// Handle executes the toggle active command
func (h *ToggleActiveHandler) Handle(ctx context.Context, cmd ToggleActiveCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	user.IsActive = cmd.IsActive
	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to toggle active flag: %w", err)
	}
	return user, nil
}
