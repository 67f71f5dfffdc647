package query

import (
	"context"

	"github.com/vastrika/storefront/internal/bargain/domain"
)

// GetOfferQuery represents the query to fetch a single offer.
type GetOfferQuery struct {
	OfferID string
	// UserID restricts the lookup to the offer's owner. Zero skips the
	// ownership check (admin access).
	UserID uint
}

// GetOfferHandler handles single offer queries.
type GetOfferHandler struct {
	repo domain.OfferRepository
}

func NewGetOfferHandler(repo domain.OfferRepository) *GetOfferHandler {
	return &GetOfferHandler{repo: repo}
}

func (h *GetOfferHandler) Handle(ctx context.Context, q GetOfferQuery) (*domain.Offer, error) {
	offer, err := h.repo.FindByID(ctx, q.OfferID)
	if err != nil {
		return nil, err
	}
	if q.UserID != 0 && offer.UserID != q.UserID {
		return nil, domain.ErrOfferNotFound
	}
	return offer, nil
}
