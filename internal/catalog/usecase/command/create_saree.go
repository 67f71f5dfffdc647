package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/vastrika/storefront/internal/catalog/domain"
)

// CreateSareeCommand represents the command to add a saree to the catalog
type CreateSareeCommand struct {
	ID                string
	Title             string
	RegionID          string
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

// CreateSareeHandler handles saree creation
type CreateSareeHandler struct {
	sarees  domain.SareeRepository
	regions domain.RegionRepository
}

// NewCreateSareeHandler creates a new create saree handler
func NewCreateSareeHandler(sarees domain.SareeRepository, regions domain.RegionRepository) *CreateSareeHandler {
	return &CreateSareeHandler{sarees: sarees, regions: regions}
}

// Handle executes the create saree command
func (h *CreateSareeHandler) Handle(ctx context.Context, cmd CreateSareeCommand) (*domain.Saree, error) {
	if cmd.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if cmd.RegionID == "" {
		return nil, fmt.Errorf("region_id is required")
	}
	if cmd.Type == "" {
		return nil, fmt.Errorf("type is required")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	if _, err := h.regions.FindByID(ctx, cmd.RegionID); err != nil {
		return nil, fmt.Errorf("region %s does not exist", cmd.RegionID)
	}

	id := cmd.ID
	if id == "" {
		id = fmt.Sprintf("%s-%s", cmd.RegionID, strings.Split(uuid.New().String(), "-")[0])
	}

	now := time.Now()
	saree := &domain.Saree{
		ID:                id,
		Title:             cmd.Title,
		RegionID:          cmd.RegionID,
		Type:              cmd.Type,
		Fabric:            cmd.Fabric,
		Characteristics:   cmd.Characteristics,
		Price:             cmd.Price,
		MRP:               cmd.MRP,
		Stock:             cmd.Stock,
		Images:            pq.StringArray(cmd.Images),
		IsBargainAllowed:  cmd.IsBargainAllowed,
		PolishPrice:       cmd.PolishPrice,
		IsCustomAvailable: cmd.IsCustomAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := h.sarees.Create(saree); err != nil {
		return nil, fmt.Errorf("failed to create saree: %w", err)
	}
	return saree, nil
}
