package query

import (
	"context"

	catalogdomain "github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/custom/domain"
)

// ListRequestsQuery represents the query to list custom requests. UserID
// scopes the listing to a single customer; Status filters the admin listing.
type ListRequestsQuery struct {
	UserID uint
	Status string
	Page   int
	Limit  int
}

// ListRequestsResult carries one page of custom requests.
type ListRequestsResult struct {
	Requests   []domain.Request         `json:"requests"`
	Pagination catalogdomain.Pagination `json:"pagination"`
}

// ListRequestsHandler handles custom request listing queries.
type ListRequestsHandler struct {
	repo domain.RequestRepository
}

func NewListRequestsHandler(repo domain.RequestRepository) *ListRequestsHandler {
	return &ListRequestsHandler{repo: repo}
}

func (h *ListRequestsHandler) Handle(ctx context.Context, q ListRequestsQuery) (*ListRequestsResult, error) {
	if q.Page < 1 {
		q.Page = catalogdomain.DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = catalogdomain.DefaultLimit
	}
	offset := (q.Page - 1) * q.Limit

	var (
		requests []domain.Request
		total    int64
		err      error
	)
	if q.UserID != 0 {
		requests, total, err = h.repo.FindByUserID(ctx, q.UserID, q.Limit, offset)
	} else {
		requests, total, err = h.repo.FindAll(ctx, q.Status, q.Limit, offset)
	}
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []domain.Request{}
	}

	return &ListRequestsResult{
		Requests:   requests,
		Pagination: catalogdomain.NewPagination(q.Page, q.Limit, total),
	}, nil
}
