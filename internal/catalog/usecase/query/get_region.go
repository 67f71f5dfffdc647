package query

import (
	"context"

	"github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/catalog/resolver"
)

// GetRegionQuery represents the query to fetch a single region
type GetRegionQuery struct {
	ID string
}

// RegionDetail is a region with up to twenty of its sarees
type RegionDetail struct {
	domain.Region
	Sarees []domain.Saree `json:"sarees"`
}

// GetRegionHandler handles the get region query
type GetRegionHandler struct {
	resolver *resolver.Resolver
}

// NewGetRegionHandler creates a new get region handler
func NewGetRegionHandler(r *resolver.Resolver) *GetRegionHandler {
	return &GetRegionHandler{resolver: r}
}

// Handle executes the get region query
func (h *GetRegionHandler) Handle(ctx context.Context, q GetRegionQuery) (*RegionDetail, error) {
	detail, err := h.resolver.GetRegion(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	sarees := detail.Sarees
	if sarees == nil {
		sarees = []domain.Saree{}
	}
	return &RegionDetail{Region: *detail.Region, Sarees: sarees}, nil
}
