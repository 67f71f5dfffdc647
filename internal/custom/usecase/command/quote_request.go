package command

import (
	"context"
	"fmt"

	"github.com/vastrika/storefront/internal/custom/domain"
)

// QuoteRequestCommand represents the command to quote or decline a submitted
// request. A zero Price declines it.
type QuoteRequestCommand struct {
	RequestID string
	Price     int64
}

// QuoteRequestHandler handles admin quotes for custom design requests.
type QuoteRequestHandler struct {
	repo domain.RequestRepository
}

func NewQuoteRequestHandler(repo domain.RequestRepository) *QuoteRequestHandler {
	return &QuoteRequestHandler{repo: repo}
}

func (h *QuoteRequestHandler) Handle(ctx context.Context, cmd QuoteRequestCommand) (*domain.Request, error) {
	if cmd.Price < 0 {
		return nil, fmt.Errorf("quoted price must not be negative")
	}

	request, err := h.repo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if request.Resolved() {
		return nil, domain.ErrRequestResolved
	}

	if cmd.Price == 0 {
		request.Status = domain.StatusDeclined
	} else {
		request.Status = domain.StatusQuoted
		request.QuotedPrice = &cmd.Price
	}

	if err := h.repo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update custom request: %w", err)
	}
	return request, nil
}
