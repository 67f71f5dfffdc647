package command

import (
	"fmt"

	"github.com/vastrika/storefront/internal/catalog/domain"
)

// DeleteSareeCommand represents the command to remove a saree
type DeleteSareeCommand struct {
	ID string
}

// DeleteSareeHandler handles saree deletion
type DeleteSareeHandler struct {
	sarees domain.SareeRepository
}

// NewDeleteSareeHandler creates a new delete saree handler
func NewDeleteSareeHandler(sarees domain.SareeRepository) *DeleteSareeHandler {
	return &DeleteSareeHandler{sarees: sarees}
}

// Handle executes the delete saree command
func (h *DeleteSareeHandler) Handle(cmd DeleteSareeCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("saree id is required")
	}
	if err := h.sarees.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete saree: %w", err)
	}
	return nil
}
