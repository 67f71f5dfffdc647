package query

import (
	"context"

	"github.com/vastrika/storefront/internal/custom/domain"
)

// GetRequestQuery represents the query to fetch a single custom request.
type GetRequestQuery struct {
	RequestID string
	// UserID restricts the lookup to the request's owner. Zero skips the
	// ownership check (admin access).
	UserID uint
}

// GetRequestHandler handles single custom request queries.
type GetRequestHandler struct {
	repo domain.RequestRepository
}

func NewGetRequestHandler(repo domain.RequestRepository) *GetRequestHandler {
	return &GetRequestHandler{repo: repo}
}

func (h *GetRequestHandler) Handle(ctx context.Context, q GetRequestQuery) (*domain.Request, error) {
	request, err := h.repo.FindByID(ctx, q.RequestID)
	if err != nil {
		return nil, err
	}
	if q.UserID != 0 && request.UserID != q.UserID {
		return nil, domain.ErrRequestNotFound
	}
	return request, nil
}
