package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vastrika/storefront/internal/bargain/domain"
	"github.com/vastrika/storefront/internal/catalog/resolver"
	"github.com/vastrika/storefront/kafka"
	"github.com/vastrika/storefront/pkg/logger"
)

// EventPublisher publishes bargain events. Nil publishers are tolerated so
// the service can run without a broker.
type EventPublisher interface {
	PublishBargainOfferSubmitted(ctx context.Context, event kafka.BargainOfferSubmittedEvent) error
}

// SubmitOfferCommand represents the command to submit a bargain offer.
type SubmitOfferCommand struct {
	SareeID string
	UserID  uint
	Amount  int64
	Note    string
}

// SubmitOfferHandler handles bargain offer submissions. The saree and its
// list price come from the catalog resolver, so offers keep working when the
// store serves sample data.
type SubmitOfferHandler struct {
	repo      domain.OfferRepository
	catalog   *resolver.Resolver
	publisher EventPublisher
}

func NewSubmitOfferHandler(repo domain.OfferRepository, catalog *resolver.Resolver, publisher EventPublisher) *SubmitOfferHandler {
	return &SubmitOfferHandler{repo: repo, catalog: catalog, publisher: publisher}
}

// Handle validates the offer against the saree's list price and persists it.
// Offers must be positive and strictly below the list price.
func (h *SubmitOfferHandler) Handle(ctx context.Context, cmd SubmitOfferCommand) (*domain.Offer, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}
	if cmd.Amount <= 0 {
		return nil, fmt.Errorf("offer amount must be greater than 0")
	}

	detail, err := h.catalog.GetSaree(ctx, cmd.SareeID)
	if err != nil {
		return nil, fmt.Errorf("saree %s: %w", cmd.SareeID, err)
	}
	saree := detail.Saree
	if !saree.IsBargainAllowed {
		return nil, fmt.Errorf("bargaining is not available for this saree")
	}
	if cmd.Amount >= saree.Price {
		return nil, fmt.Errorf("offer must be below the list price of %d", saree.Price)
	}

	discount := float64(saree.Price-cmd.Amount) / float64(saree.Price) * 100

	offer := &domain.Offer{
		ID:          fmt.Sprintf("BRG-%s", uuid.New().String()[:8]),
		SareeID:     saree.ID,
		SareeTitle:  saree.Title,
		UserID:      cmd.UserID,
		ListPrice:   saree.Price,
		Amount:      cmd.Amount,
		DiscountPct: discount,
		Status:      domain.StatusPending,
		Note:        cmd.Note,
	}

	if err := h.repo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("failed to create bargain offer: %w", err)
	}

	h.publishSubmitted(ctx, offer)
	return offer, nil
}

func (h *SubmitOfferHandler) publishSubmitted(ctx context.Context, offer *domain.Offer) {
	if h.publisher == nil {
		return
	}

	event := kafka.BargainOfferSubmittedEvent{
		EventID:     uuid.New().String(),
		OfferID:     offer.ID,
		SareeID:     offer.SareeID,
		UserID:      offer.UserID,
		Amount:      offer.Amount,
		ListPrice:   offer.ListPrice,
		DiscountPct: offer.DiscountPct,
		SubmittedAt: time.Now().UTC(),
	}
	if err := h.publisher.PublishBargainOfferSubmitted(ctx, event); err != nil {
		logger.Error(ctx).Err(err).Str("offer_id", offer.ID).Msg("Failed to publish bargain offer event")
	}
}
