package query

import (
	"context"

	"github.com/vastrika/storefront/internal/order/domain"
)

// GetOrderQuery represents the query to fetch a single order.
type GetOrderQuery struct {
	OrderID string
	// UserID restricts the lookup to the order's owner. Zero skips the
	// ownership check (admin access).
	UserID uint
}

// GetOrderHandler handles single order queries.
type GetOrderHandler struct {
	repo domain.OrderRepository
}

func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

func (h *GetOrderHandler) Handle(ctx context.Context, q GetOrderQuery) (*domain.Order, error) {
	order, err := h.repo.FindByID(ctx, q.OrderID)
	if err != nil {
		return nil, err
	}
	if q.UserID != 0 && order.UserID != q.UserID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}
