package command

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/vastrika/storefront/internal/catalog/domain"
)

// UpdateSareeCommand represents the command to update a catalog saree
type UpdateSareeCommand struct {
	ID                string
	Title             string
	Type              string
	Fabric            string
	Characteristics   string
	Price             int64
	MRP               int64
	Stock             int
	Images            []string
	IsBargainAllowed  bool
	PolishPrice       int64
	IsCustomAvailable bool
}

// UpdateSareeHandler handles saree updates
type UpdateSareeHandler struct {
	sarees domain.SareeRepository
}

// NewUpdateSareeHandler creates a new update saree handler
func NewUpdateSareeHandler(sarees domain.SareeRepository) *UpdateSareeHandler {
	return &UpdateSareeHandler{sarees: sarees}
}

// Handle executes the update saree command
func (h *UpdateSareeHandler) Handle(ctx context.Context, cmd UpdateSareeCommand) (*domain.Saree, error) {
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	saree, err := h.sarees.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, domain.ErrSareeNotFound
	}

	if cmd.Title != "" {
		saree.Title = cmd.Title
	}
	if cmd.Type != "" {
		saree.Type = cmd.Type
	}
	if cmd.Fabric != "" {
		saree.Fabric = cmd.Fabric
	}
	if cmd.Characteristics != "" {
		saree.Characteristics = cmd.Characteristics
	}
	if cmd.Images != nil {
		saree.Images = pq.StringArray(cmd.Images)
	}
	saree.Price = cmd.Price
	saree.MRP = cmd.MRP
	saree.Stock = cmd.Stock
	saree.IsBargainAllowed = cmd.IsBargainAllowed
	saree.PolishPrice = cmd.PolishPrice
	saree.IsCustomAvailable = cmd.IsCustomAvailable
	saree.UpdatedAt = time.Now()

	if err := h.sarees.Update(saree); err != nil {
		return nil, fmt.Errorf("failed to update saree: %w", err)
	}
	return saree, nil
}
