package main

import (
	"context"
	"encoding/json"
	"fmt"

	catalogCommand "github.com/vastrika/storefront/internal/catalog/usecase/command"
	"github.com/vastrika/storefront/kafka"
	"github.com/vastrika/storefront/pkg/logger"
)

// orderPlacedHandler decrements catalog stock for every line of a placed
// order. A saree missing from the store is skipped; those orders were filled
// from sample data and have no stock row to decrement.
func orderPlacedHandler(decrement *catalogCommand.DecrementStockHandler) kafka.EventHandler {
	return func(ctx context.Context, payload []byte) error {
		var event kafka.OrderPlacedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("failed to decode order placed event: %w", err)
		}

		for _, item := range event.Items {
			err := decrement.Handle(catalogCommand.DecrementStockCommand{
				SareeID:  item.SareeID,
				Quantity: item.Quantity,
			})
			if err != nil {
				logger.Warn(ctx).
					Err(err).
					Str("order_id", event.OrderID).
					Str("saree_id", item.SareeID).
					Msg("Stock decrement skipped")
			}
		}

		logger.Info(ctx).
			Str("order_id", event.OrderID).
			Int("items", len(event.Items)).
			Msg("Order placed event processed")
		return nil
	}
}
