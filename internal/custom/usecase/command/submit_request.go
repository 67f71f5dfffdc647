package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vastrika/storefront/internal/custom/domain"
	"github.com/vastrika/storefront/kafka"
	"github.com/vastrika/storefront/pkg/logger"
)

// EventPublisher publishes custom request events. Nil publishers are
// tolerated so the service can run without a broker.
type EventPublisher interface {
	PublishCustomRequestSubmitted(ctx context.Context, event kafka.CustomRequestSubmittedEvent) error
}

// SubmitRequestCommand represents the command to submit a custom design
// request.
type SubmitRequestCommand struct {
	UserID uint
	Border string
	Pallu  string
	Color  string
	Notes  string
}

// SubmitRequestHandler handles custom design request submissions. Selections
// are validated against the design option catalogs.
type SubmitRequestHandler struct {
	repo      domain.RequestRepository
	publisher EventPublisher
}

func NewSubmitRequestHandler(repo domain.RequestRepository, publisher EventPublisher) *SubmitRequestHandler {
	return &SubmitRequestHandler{repo: repo, publisher: publisher}
}

func (h *SubmitRequestHandler) Handle(ctx context.Context, cmd SubmitRequestCommand) (*domain.Request, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}
	if !domain.ValidBorder(cmd.Border) {
		return nil, fmt.Errorf("%w: border %q", domain.ErrUnknownOption, cmd.Border)
	}
	if !domain.ValidPallu(cmd.Pallu) {
		return nil, fmt.Errorf("%w: pallu %q", domain.ErrUnknownOption, cmd.Pallu)
	}
	if !domain.ValidColor(cmd.Color) {
		return nil, fmt.Errorf("%w: color %q", domain.ErrUnknownOption, cmd.Color)
	}

	request := &domain.Request{
		ID:     fmt.Sprintf("CST-%s", uuid.New().String()[:8]),
		UserID: cmd.UserID,
		Border: cmd.Border,
		Pallu:  cmd.Pallu,
		Color:  cmd.Color,
		Notes:  cmd.Notes,
		Status: domain.StatusSubmitted,
	}

	if err := h.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create custom request: %w", err)
	}

	h.publishSubmitted(ctx, request)
	return request, nil
}

func (h *SubmitRequestHandler) publishSubmitted(ctx context.Context, request *domain.Request) {
	if h.publisher == nil {
		return
	}

	event := kafka.CustomRequestSubmittedEvent{
		EventID:     uuid.New().String(),
		RequestID:   request.ID,
		UserID:      request.UserID,
		Border:      request.Border,
		Pallu:       request.Pallu,
		Color:       request.Color,
		SubmittedAt: time.Now().UTC(),
	}
	if err := h.publisher.PublishCustomRequestSubmitted(ctx, event); err != nil {
		logger.Error(ctx).Err(err).Str("request_id", request.ID).Msg("Failed to publish custom request event")
	}
}
