package query

import (
	"context"

	"github.com/vastrika/storefront/internal/user/domain"
)

// GetStatsHandler handles user statistics queries for the admin dashboard
type GetStatsHandler struct {
	repo domain.UserRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.UserRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(ctx context.Context) (*domain.UserStats, error) {
	return h.repo.Stats(ctx)
}
