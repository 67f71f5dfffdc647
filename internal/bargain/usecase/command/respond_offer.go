package command

import (
	"context"
	"fmt"

	"github.com/vastrika/storefront/internal/bargain/domain"
)

// Resolutions an admin can apply to a pending offer.
const (
	ResolutionAccept  = "accept"
	ResolutionCounter = "counter"
	ResolutionDecline = "decline"
)

// RespondOfferCommand represents the command to resolve a pending offer.
// CounterAmount is required for counter resolutions.
type RespondOfferCommand struct {
	OfferID       string
	Resolution    string
	CounterAmount int64
}

// RespondOfferHandler handles admin responses to bargain offers.
type RespondOfferHandler struct {
	repo domain.OfferRepository
}

func NewRespondOfferHandler(repo domain.OfferRepository) *RespondOfferHandler {
	return &RespondOfferHandler{repo: repo}
}

func (h *RespondOfferHandler) Handle(ctx context.Context, cmd RespondOfferCommand) (*domain.Offer, error) {
	offer, err := h.repo.FindByID(ctx, cmd.OfferID)
	if err != nil {
		return nil, err
	}
	if offer.Resolved() {
		return nil, domain.ErrOfferResolved
	}

	switch cmd.Resolution {
	case ResolutionAccept:
		offer.Status = domain.StatusAccepted
	case ResolutionDecline:
		offer.Status = domain.StatusDeclined
	case ResolutionCounter:
		if cmd.CounterAmount <= offer.Amount || cmd.CounterAmount >= offer.ListPrice {
			return nil, fmt.Errorf("counter amount must be between the offer and the list price")
		}
		offer.Status = domain.StatusCountered
		offer.CounterAmount = &cmd.CounterAmount
	default:
		return nil, domain.ErrInvalidResolution
	}

	if err := h.repo.Update(ctx, offer); err != nil {
		return nil, fmt.Errorf("failed to update bargain offer: %w", err)
	}
	return offer, nil
}
