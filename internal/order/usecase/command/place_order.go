package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vastrika/storefront/internal/catalog/resolver"
	"github.com/vastrika/storefront/internal/order/domain"
	"github.com/vastrika/storefront/kafka"
	"github.com/vastrika/storefront/pkg/logger"
)

// paymentDelay simulates the round trip to the payment gateway.
const paymentDelay = 150 * time.Millisecond

// EventPublisher publishes order events. Nil publishers are tolerated so the
// service can run without a broker.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// PlaceOrderItem is a single requested line of an order.
type PlaceOrderItem struct {
	SareeID    string
	Quantity   int
	WithPolish bool
}

// PlaceOrderCommand represents the command to place an order.
type PlaceOrderCommand struct {
	UserID          uint
	Items           []PlaceOrderItem
	PaymentMethod   string
	ShippingName    string
	ShippingPhone   string
	ShippingAddress string
}

// PlaceOrderHandler handles place order commands. Item prices come from the
// catalog resolver so ordering keeps working when the store is down.
type PlaceOrderHandler struct {
	repo      domain.OrderRepository
	catalog   *resolver.Resolver
	publisher EventPublisher
}

func NewPlaceOrderHandler(repo domain.OrderRepository, catalog *resolver.Resolver, publisher EventPublisher) *PlaceOrderHandler {
	return &PlaceOrderHandler{repo: repo, catalog: catalog, publisher: publisher}
}

// Handle validates the items, charges the simulated payment gateway,
// persists the order and publishes an order placed event.
func (h *PlaceOrderHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	if cmd.PaymentMethod == "" {
		cmd.PaymentMethod = "RAZORPAY"
	}

	orderID := fmt.Sprintf("ORD-%s", uuid.New().String()[:8])

	var items []domain.OrderItem
	var subtotal, polishTotal int64
	for _, line := range cmd.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be greater than 0 for saree %s", line.SareeID)
		}

		detail, err := h.catalog.GetSaree(ctx, line.SareeID)
		if err != nil {
			return nil, fmt.Errorf("saree %s: %w", line.SareeID, err)
		}
		saree := detail.Saree
		if !saree.InStock() {
			return nil, fmt.Errorf("saree %s is out of stock", line.SareeID)
		}
		if line.WithPolish && saree.PolishPrice == 0 {
			line.WithPolish = false
		}

		item := domain.OrderItem{
			OrderID:     orderID,
			SareeID:     saree.ID,
			Title:       saree.Title,
			UnitPrice:   saree.Price,
			Quantity:    line.Quantity,
			WithPolish:  line.WithPolish,
			PolishPrice: saree.PolishPrice,
		}
		subtotal += saree.Price * int64(line.Quantity)
		if line.WithPolish {
			polishTotal += saree.PolishPrice * int64(line.Quantity)
		}
		items = append(items, item)
	}

	transactionID, err := h.chargePayment(ctx, subtotal+polishTotal, cmd.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	order := &domain.Order{
		ID:              orderID,
		UserID:          cmd.UserID,
		Items:           items,
		Subtotal:        subtotal,
		PolishTotal:     polishTotal,
		TotalAmount:     subtotal + polishTotal,
		Status:          domain.StatusConfirmed,
		PaymentMethod:   cmd.PaymentMethod,
		TransactionID:   transactionID,
		ShippingName:    cmd.ShippingName,
		ShippingPhone:   cmd.ShippingPhone,
		ShippingAddress: cmd.ShippingAddress,
	}

	if err := h.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	h.publishPlaced(ctx, order)
	return order, nil
}

// chargePayment stands in for a real gateway integration. It always succeeds
// after a fixed delay unless the context is cancelled first.
func (h *PlaceOrderHandler) chargePayment(ctx context.Context, amount int64, method string) (string, error) {
	select {
	case <-time.After(paymentDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	transactionID := fmt.Sprintf("TXN-%s", uuid.New().String()[:12])
	logger.Info(ctx).
		Str("transaction_id", transactionID).
		Str("method", method).
		Int64("amount", amount).
		Msg("Payment captured")
	return transactionID, nil
}

func (h *PlaceOrderHandler) publishPlaced(ctx context.Context, order *domain.Order) {
	if h.publisher == nil {
		return
	}

	event := kafka.OrderPlacedEvent{
		EventID:     uuid.New().String(),
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		PlacedAt:    time.Now().UTC(),
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, kafka.OrderPlacedItem{
			SareeID:  item.SareeID,
			Quantity: item.Quantity,
			Price:    item.UnitPrice,
		})
	}

	// Event delivery is best effort. The order is already committed.
	if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Error(ctx).Err(err).Str("order_id", order.ID).Msg("Failed to publish order placed event")
	}
}
