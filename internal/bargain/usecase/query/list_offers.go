package query

import (
	"context"

	"github.com/vastrika/storefront/internal/bargain/domain"
	catalogdomain "github.com/vastrika/storefront/internal/catalog/domain"
)

// ListOffersQuery represents the query to list offers. UserID scopes the
// listing to a single customer; SareeID and Status filter the admin listing.
type ListOffersQuery struct {
	UserID  uint
	SareeID string
	Status  string
	Page    int
	Limit   int
}

// ListOffersResult carries one page of offers.
type ListOffersResult struct {
	Offers     []domain.Offer           `json:"offers"`
	Pagination catalogdomain.Pagination `json:"pagination"`
}

// ListOffersHandler handles offer listing queries.
type ListOffersHandler struct {
	repo domain.OfferRepository
}

func NewListOffersHandler(repo domain.OfferRepository) *ListOffersHandler {
	return &ListOffersHandler{repo: repo}
}

func (h *ListOffersHandler) Handle(ctx context.Context, q ListOffersQuery) (*ListOffersResult, error) {
	if q.Page < 1 {
		q.Page = catalogdomain.DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = catalogdomain.DefaultLimit
	}
	offset := (q.Page - 1) * q.Limit

	var (
		offers []domain.Offer
		total  int64
		err    error
	)
	if q.UserID != 0 {
		offers, total, err = h.repo.FindByUserID(ctx, q.UserID, q.Limit, offset)
	} else {
		offers, total, err = h.repo.FindAll(ctx, q.SareeID, q.Status, q.Limit, offset)
	}
	if err != nil {
		return nil, err
	}
	if offers == nil {
		offers = []domain.Offer{}
	}

	return &ListOffersResult{
		Offers:     offers,
		Pagination: catalogdomain.NewPagination(q.Page, q.Limit, total),
	}, nil
}
