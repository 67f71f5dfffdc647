package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/catalog/resolver"
	"github.com/vastrika/storefront/internal/order/domain"
	"github.com/vastrika/storefront/kafka"
)

// downSareeRepo simulates an unreachable store so the resolver serves the
// built-in sample catalog, which is what order pricing falls back to.
type downSareeRepo struct{}

var errStoreDown = errors.New("store down")

func (downSareeRepo) Create(*catalogdomain.Saree) error { return errStoreDown }
func (downSareeRepo) Upsert(*catalogdomain.Saree) error { return errStoreDown }
func (downSareeRepo) Update(*catalogdomain.Saree) error { return errStoreDown }
func (downSareeRepo) Delete(string) error { return errStoreDown }
func (downSareeRepo) UpdateStock(string, int) error { return errStoreDown }
func (downSareeRepo) DecrementStock(string, int) error { return errStoreDown }
func (downSareeRepo) Count() (int64, error) { return 0, errStoreDown }

func (downSareeRepo) FindByID(context.Context, string) (*catalogdomain.Saree, error) {
	return nil, errStoreDown
}

func (downSareeRepo) FindFiltered(context.Context, catalogdomain.SareeFilter) ([]catalogdomain.Saree, int64, error) {
	return nil, 0, errStoreDown
}

func (downSareeRepo) FindRelated(context.Context, string, string, int) ([]catalogdomain.Saree, error) {
	return nil, errStoreDown
}

type downRegionRepo struct{}

func (downRegionRepo) Create(*catalogdomain.Region) error { return errStoreDown }
func (downRegionRepo) Upsert(*catalogdomain.Region) error { return errStoreDown }
func (downRegionRepo) Count() (int64, error) { return 0, errStoreDown }

func (downRegionRepo) FindByID(context.Context, string) (*catalogdomain.Region, error) {
	return nil, errStoreDown
}

func (downRegionRepo) FindAll(context.Context, bool) ([]catalogdomain.Region, error) {
	return nil, errStoreDown
}

type fakeOrderRepo struct {
	created *domain.Order
	err     error
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	f.created = order
	return nil
}

func (f *fakeOrderRepo) FindByID(context.Context, string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func (f *fakeOrderRepo) FindByUserID(context.Context, uint, int, int) ([]domain.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) FindAll(context.Context, string, int, int) ([]domain.Order, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) UpdateStatus(context.Context, string, string) error { return nil }

func (f *fakeOrderRepo) Stats(context.Context) (*domain.OrderStats, error) { return nil, nil }

type fakePublisher struct {
	events []kafka.OrderPlacedEvent
	err    error
}

func (f *fakePublisher) PublishOrderPlaced(_ context.Context, event kafka.OrderPlacedEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func newTestResolver() *resolver.Resolver {
	return resolver.New(downSareeRepo{}, downRegionRepo{}, 100*time.Millisecond)
}

func TestPlaceOrderHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("places and confirms a priced order", func(t *testing.T) {
		repo := &fakeOrderRepo{}
		publisher := &fakePublisher{}
		handler := NewPlaceOrderHandler(repo, newTestResolver(), publisher)

		order, err := handler.Handle(ctx, PlaceOrderCommand{
			UserID: 7,
			Items: []PlaceOrderItem{
				{SareeID: "dharmavaram-1", Quantity: 2, WithPolish: true},
			},
			ShippingName:    "Asha Rao",
			ShippingPhone:   "9876543210",
			ShippingAddress: "12 Temple Street, Chennai",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, order.Status)
		assert.Equal(t, "RAZORPAY", order.PaymentMethod)
		assert.Contains(t, order.ID, "ORD-")
		assert.Contains(t, order.TransactionID, "TXN-")
		assert.Equal(t, uint(7), order.UserID)

		require.Len(t, order.Items, 1)
		item := order.Items[0]
		assert.Equal(t, "dharmavaram-1", item.SareeID)
		assert.Equal(t, 2, item.Quantity)
		assert.True(t, item.WithPolish)

		// Totals derive from the resolved unit and polish prices
		assert.Equal(t, item.UnitPrice*2, order.Subtotal)
		assert.Equal(t, item.PolishPrice*2, order.PolishTotal)
		assert.Equal(t, order.Subtotal+order.PolishTotal, order.TotalAmount)

		require.NotNil(t, repo.created)
		assert.Equal(t, order.ID, repo.created.ID)
	})

	t.Run("publishes an order placed event", func(t *testing.T) {
		publisher := &fakePublisher{}
		handler := NewPlaceOrderHandler(&fakeOrderRepo{}, newTestResolver(), publisher)

		order, err := handler.Handle(ctx, PlaceOrderCommand{
			UserID: 3,
			Items:  []PlaceOrderItem{{SareeID: "varanasi-1", Quantity: 1}},
		})

		require.NoError(t, err)
		require.Len(t, publisher.events, 1)
		event := publisher.events[0]
		assert.Equal(t, order.ID, event.OrderID)
		assert.Equal(t, uint(3), event.UserID)
		assert.Equal(t, order.TotalAmount, event.TotalAmount)
		require.Len(t, event.Items, 1)
		assert.Equal(t, "varanasi-1", event.Items[0].SareeID)
	})

	t.Run("publish failure does not fail the order", func(t *testing.T) {
		publisher := &fakePublisher{err: errors.New("broker unreachable")}
		handler := NewPlaceOrderHandler(&fakeOrderRepo{}, newTestResolver(), publisher)

		_, err := handler.Handle(ctx, PlaceOrderCommand{
			UserID: 3,
			Items:  []PlaceOrderItem{{SareeID: "mysore-1", Quantity: 1}},
		})
		assert.NoError(t, err)
	})

	t.Run("nil publisher is tolerated", func(t *testing.T) {
		handler := NewPlaceOrderHandler(&fakeOrderRepo{}, newTestResolver(), nil)

		_, err := handler.Handle(ctx, PlaceOrderCommand{
			UserID: 3,
			Items:  []PlaceOrderItem{{SareeID: "mysore-1", Quantity: 1}},
		})
		assert.NoError(t, err)
	})

	t.Run("rejects missing user", func(t *testing.T) {
		handler := NewPlaceOrderHandler(&fakeOrderRepo{}, newTestResolver(), nil)

		_, err := handler.Handle(ctx, PlaceOrderCommand{
			Items: []PlaceOrderItem{{SareeID: "mysore-1", Quantity: 1}},
		})
		assert.Error(t, err)
	})

	t.Run("rejects empty and invalid items", func(t *testing.T) {
		handler := NewPlaceOrderHandler(&fakeOrderRepo{}, newTestResolver(), nil)

		_, err := handler.Handle(ctx, PlaceOrderCommand{UserID: 1})
		assert.Error(t, err)

		_, err = handler.Handle(ctx, PlaceOrderCommand{
			UserID: 1,
			Items:  []PlaceOrderItem{{SareeID: "mysore-1", Quantity: 0}},
		})
		assert.Error(t, err)
	})

	t.Run("unknown saree fails the order", func(t *testing.T) {
		handler := NewPlaceOrderHandler(&fakeOrderRepo{}, newTestResolver(), nil)

		_, err := handler.Handle(ctx, PlaceOrderCommand{
			UserID: 1,
			Items:  []PlaceOrderItem{{SareeID: "no-such-saree", Quantity: 1}},
		})
		assert.ErrorIs(t, err, catalogdomain.ErrSareeNotFound)
	})
}
