package query

import (
	"context"

	"github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/catalog/resolver"
)

// ListRegionsQuery represents the query to list weaving regions
type ListRegionsQuery struct {
	FeaturedOnly bool
}

// ListRegionsHandler handles the region listing query
type ListRegionsHandler struct {
	resolver *resolver.Resolver
}

// NewListRegionsHandler creates a new list regions handler
func NewListRegionsHandler(r *resolver.Resolver) *ListRegionsHandler {
	return &ListRegionsHandler{resolver: r}
}

// Handle executes the list regions query
func (h *ListRegionsHandler) Handle(ctx context.Context, q ListRegionsQuery) []domain.Region {
	regions, _ := h.resolver.ListRegions(ctx, q.FeaturedOnly)
	if regions == nil {
		regions = []domain.Region{}
	}
	return regions
}
