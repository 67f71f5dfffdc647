package query

import (
	"context"

	"github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/catalog/resolver"
)

// ListSareesQuery represents the query to list catalog sarees
type ListSareesQuery struct {
	Filter domain.SareeFilter
}

// ListSareesResult is the resolved listing window
type ListSareesResult struct {
	Sarees     []domain.Saree    `json:"sarees"`
	Pagination domain.Pagination `json:"pagination"`
}

// ListSareesHandler handles the saree listing query
type ListSareesHandler struct {
	resolver *resolver.Resolver
}

// NewListSareesHandler creates a new list sarees handler
func NewListSareesHandler(r *resolver.Resolver) *ListSareesHandler {
	return &ListSareesHandler{resolver: r}
}

// Handle executes the list sarees query. It never fails: the resolver
// guarantees a response whenever the sample dataset holds a match.
func (h *ListSareesHandler) Handle(ctx context.Context, q ListSareesQuery) ListSareesResult {
	page := h.resolver.ListSarees(ctx, q.Filter)
	if page.Sarees == nil {
		page.Sarees = []domain.Saree{}
	}
	return ListSareesResult{
		Sarees:     page.Sarees,
		Pagination: page.Pagination,
	}
}
