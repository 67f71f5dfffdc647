package query

import (
	"context"

	"github.com/vastrika/storefront/internal/order/domain"
)

// GetStatsHandler handles order statistics queries for the admin dashboard.
type GetStatsHandler struct {
	repo domain.OrderRepository
}

func NewGetStatsHandler(repo domain.OrderRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

func (h *GetStatsHandler) Handle(ctx context.Context) (*domain.OrderStats, error) {
	return h.repo.Stats(ctx)
}
