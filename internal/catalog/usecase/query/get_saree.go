package query

import (
	"context"

	"github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/catalog/resolver"
)

// GetSareeQuery represents the query to fetch a single saree
type GetSareeQuery struct {
	ID string
}

// SareeDetail is a saree plus up to four related items from its region
type SareeDetail struct {
	domain.Saree
	RelatedSarees []domain.Saree `json:"relatedSarees"`
}

// GetSareeHandler handles the get saree query
type GetSareeHandler struct {
	resolver *resolver.Resolver
}

// NewGetSareeHandler creates a new get saree handler
func NewGetSareeHandler(r *resolver.Resolver) *GetSareeHandler {
	return &GetSareeHandler{resolver: r}
}

// Handle executes the get saree query
func (h *GetSareeHandler) Handle(ctx context.Context, q GetSareeQuery) (*SareeDetail, error) {
	detail, err := h.resolver.GetSaree(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	related := detail.Related
	if related == nil {
		related = []domain.Saree{}
	}
	return &SareeDetail{Saree: *detail.Saree, RelatedSarees: related}, nil
}
