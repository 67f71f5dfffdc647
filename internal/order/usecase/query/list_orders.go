package query

import (
	"context"

	catalogdomain "github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/order/domain"
)

// ListOrdersQuery represents the query to list orders. UserID scopes the
// listing to a single customer; Status filters the admin listing.
type ListOrdersQuery struct {
	UserID uint
	Status string
	Page   int
	Limit  int
}

// ListOrdersResult carries one page of orders.
type ListOrdersResult struct {
	Orders     []domain.Order           `json:"orders"`
	Pagination catalogdomain.Pagination `json:"pagination"`
}

// ListOrdersHandler handles order listing queries.
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

func (h *ListOrdersHandler) Handle(ctx context.Context, q ListOrdersQuery) (*ListOrdersResult, error) {
	if q.Page < 1 {
		q.Page = catalogdomain.DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = catalogdomain.DefaultLimit
	}
	offset := (q.Page - 1) * q.Limit

	var (
		orders []domain.Order
		total  int64
		err    error
	)
	if q.UserID != 0 {
		orders, total, err = h.repo.FindByUserID(ctx, q.UserID, q.Limit, offset)
	} else {
		orders, total, err = h.repo.FindAll(ctx, q.Status, q.Limit, offset)
	}
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	return &ListOrdersResult{
		Orders:     orders,
		Pagination: catalogdomain.NewPagination(q.Page, q.Limit, total),
	}, nil
}
