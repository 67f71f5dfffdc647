package command

import (
	"fmt"

	"github.com/vastrika/storefront/internal/catalog/domain"
)

// UpdateStockCommand represents the command to set a saree's stock level
type UpdateStockCommand struct {
	SareeID string
	Stock   int
}

// UpdateStockHandler handles stock updates
type UpdateStockHandler struct {
	sarees domain.SareeRepository
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(sarees domain.SareeRepository) *UpdateStockHandler {
	return &UpdateStockHandler{sarees: sarees}
}

// Handle executes the update stock command
func (h *UpdateStockHandler) Handle(cmd UpdateStockCommand) error {
	if cmd.SareeID == "" {
		return fmt.Errorf("saree id is required")
	}
	if cmd.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	if err := h.sarees.UpdateStock(cmd.SareeID, cmd.Stock); err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	return nil
}

// DecrementStockCommand reduces stock after an order is placed
type DecrementStockCommand struct {
	SareeID  string
	Quantity int
}

// DecrementStockHandler handles stock decrements driven by order events
type DecrementStockHandler struct {
	sarees domain.SareeRepository
}

// NewDecrementStockHandler creates a new decrement stock handler
func NewDecrementStockHandler(sarees domain.SareeRepository) *DecrementStockHandler {
	return &DecrementStockHandler{sarees: sarees}
}

// Handle executes the decrement stock command
func (h *DecrementStockHandler) Handle(cmd DecrementStockCommand) error {
	if cmd.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if err := h.sarees.DecrementStock(cmd.SareeID, cmd.Quantity); err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	return nil
}
