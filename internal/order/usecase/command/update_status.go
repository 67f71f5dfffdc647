package command

import (
	"context"
	"fmt"

	"github.com/vastrika/storefront/internal/order/domain"
)

// UpdateStatusCommand represents the command to move an order to a new status.
type UpdateStatusCommand struct {
	OrderID string
	Status  string
}

// UpdateStatusHandler handles order status updates.
type UpdateStatusHandler struct {
	repo domain.OrderRepository
}

func NewUpdateStatusHandler(repo domain.OrderRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo}
}

func (h *UpdateStatusHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) error {
	if cmd.OrderID == "" {
		return fmt.Errorf("order id is required")
	}
	if !domain.ValidStatus(cmd.Status) {
		return domain.ErrInvalidStatus
	}
	return h.repo.UpdateStatus(ctx, cmd.OrderID, cmd.Status)
}
