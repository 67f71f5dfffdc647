package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/vastrika/storefront/internal/catalog/domain"
)

// CreateRegionCommand represents the command to register a weaving region
type CreateRegionCommand struct {
	ID          string
	Name        string
	State       string
	Description string
	Featured    bool
}

// CreateRegionHandler handles region creation
type CreateRegionHandler struct {
	regions domain.RegionRepository
}

// NewCreateRegionHandler creates a new create region handler
func NewCreateRegionHandler(regions domain.RegionRepository) *CreateRegionHandler {
	return &CreateRegionHandler{regions: regions}
}

// Handle executes the create region command
func (h *CreateRegionHandler) Handle(cmd CreateRegionCommand) (*domain.Region, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("region name is required")
	}

	id := cmd.ID
	if id == "" {
		// Slug from the town part of the name, e.g. "Mysore, Karnataka" -> "mysore"
		town := strings.SplitN(cmd.Name, ",", 2)[0]
		id = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(town), " ", "-"))
	}

	now := time.Now()
	region := &domain.Region{
		ID:          id,
		Name:        cmd.Name,
		State:       cmd.State,
		Description: cmd.Description,
		Featured:    cmd.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.regions.Create(region); err != nil {
		return nil, fmt.Errorf("failed to create region: %w", err)
	}
	return region, nil
}
