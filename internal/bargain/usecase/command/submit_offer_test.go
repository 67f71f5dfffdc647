package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrika/storefront/internal/bargain/domain"
	catalogdomain "github.com/vastrika/storefront/internal/catalog/domain"
	"github.com/vastrika/storefront/internal/catalog/resolver"
	"github.com/vastrika/storefront/kafka"
)

// downSareeRepo forces the resolver onto the sample catalog. The sample
// dharmavaram-1 saree allows bargaining at a list price of 25000; mysore-1
// does not allow bargaining.
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

type fakeOfferRepo struct {
	offers map[string]*domain.Offer
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: make(map[string]*domain.Offer)}
}

func (f *fakeOfferRepo) Create(_ context.Context, offer *domain.Offer) error {
	f.offers[offer.ID] = offer
	return nil
}

func (f *fakeOfferRepo) FindByID(_ context.Context, id string) (*domain.Offer, error) {
	offer, ok := f.offers[id]
	if !ok {
		return nil, domain.ErrOfferNotFound
	}
	copied := *offer
	return &copied, nil
}

func (f *fakeOfferRepo) FindByUserID(context.Context, uint, int, int) ([]domain.Offer, int64, error) {
	return nil, 0, nil
}

func (f *fakeOfferRepo) FindAll(context.Context, string, string, int, int) ([]domain.Offer, int64, error) {
	return nil, 0, nil
}

func (f *fakeOfferRepo) Update(_ context.Context, offer *domain.Offer) error {
	f.offers[offer.ID] = offer
	return nil
}

type fakeBargainPublisher struct {
	events []kafka.BargainOfferSubmittedEvent
}

func (f *fakeBargainPublisher) PublishBargainOfferSubmitted(_ context.Context, event kafka.BargainOfferSubmittedEvent) error {
	f.events = append(f.events, event)
	return nil
}

func newTestResolver() *resolver.Resolver {
	return resolver.New(downSareeRepo{}, downRegionRepo{}, 100*time.Millisecond)
}

func TestSubmitOfferHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a valid offer below list price", func(t *testing.T) {
		repo := newFakeOfferRepo()
		publisher := &fakeBargainPublisher{}
		handler := NewSubmitOfferHandler(repo, newTestResolver(), publisher)

		offer, err := handler.Handle(ctx, SubmitOfferCommand{
			SareeID: "dharmavaram-1",
			UserID:  5,
			Amount:  20000,
			Note:    "saw it cheaper at the exhibition",
		})

		require.NoError(t, err)
		assert.Contains(t, offer.ID, "BRG-")
		assert.Equal(t, domain.StatusPending, offer.Status)
		assert.Equal(t, int64(25000), offer.ListPrice)
		assert.Equal(t, int64(20000), offer.Amount)
		assert.InDelta(t, 20.0, offer.DiscountPct, 0.01)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, offer.ID, publisher.events[0].OfferID)
	})

	t.Run("rejects offer at or above list price", func(t *testing.T) {
		handler := NewSubmitOfferHandler(newFakeOfferRepo(), newTestResolver(), nil)

		_, err := handler.Handle(ctx, SubmitOfferCommand{
			SareeID: "dharmavaram-1",
			UserID:  5,
			Amount:  25000,
		})
		assert.Error(t, err)

		_, err = handler.Handle(ctx, SubmitOfferCommand{
			SareeID: "dharmavaram-1",
			UserID:  5,
			Amount:  30000,
		})
		assert.Error(t, err)
	})

	t.Run("rejects offers on non-bargain sarees", func(t *testing.T) {
		handler := NewSubmitOfferHandler(newFakeOfferRepo(), newTestResolver(), nil)

		_, err := handler.Handle(ctx, SubmitOfferCommand{
			SareeID: "mysore-1",
			UserID:  5,
			Amount:  10000,
		})
		assert.Error(t, err)
	})

	t.Run("rejects non-positive amounts and missing user", func(t *testing.T) {
		handler := NewSubmitOfferHandler(newFakeOfferRepo(), newTestResolver(), nil)

		_, err := handler.Handle(ctx, SubmitOfferCommand{SareeID: "dharmavaram-1", UserID: 5, Amount: 0})
		assert.Error(t, err)

		_, err = handler.Handle(ctx, SubmitOfferCommand{SareeID: "dharmavaram-1", Amount: 1000})
		assert.Error(t, err)
	})

	t.Run("unknown saree is not found", func(t *testing.T) {
		handler := NewSubmitOfferHandler(newFakeOfferRepo(), newTestResolver(), nil)

		_, err := handler.Handle(ctx, SubmitOfferCommand{SareeID: "nope", UserID: 5, Amount: 100})
		assert.ErrorIs(t, err, catalogdomain.ErrSareeNotFound)
	})
}

func TestRespondOfferHandler_Handle(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, repo domain.OfferRepository) *domain.Offer {
		t.Helper()
		handler := NewSubmitOfferHandler(repo, newTestResolver(), nil)
		offer, err := handler.Handle(ctx, SubmitOfferCommand{
			SareeID: "dharmavaram-1",
			UserID:  5,
			Amount:  20000,
		})
		require.NoError(t, err)
		return offer
	}

	t.Run("accept resolves the offer", func(t *testing.T) {
		repo := newFakeOfferRepo()
		offer := submit(t, repo)

		handler := NewRespondOfferHandler(repo)
		resolved, err := handler.Handle(ctx, RespondOfferCommand{OfferID: offer.ID, Resolution: ResolutionAccept})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, resolved.Status)
	})

	t.Run("counter requires amount between offer and list price", func(t *testing.T) {
		repo := newFakeOfferRepo()
		offer := submit(t, repo)
		handler := NewRespondOfferHandler(repo)

		_, err := handler.Handle(ctx, RespondOfferCommand{
			OfferID: offer.ID, Resolution: ResolutionCounter, CounterAmount: 20000,
		})
		assert.Error(t, err)

		_, err = handler.Handle(ctx, RespondOfferCommand{
			OfferID: offer.ID, Resolution: ResolutionCounter, CounterAmount: 25000,
		})
		assert.Error(t, err)

		resolved, err := handler.Handle(ctx, RespondOfferCommand{
			OfferID: offer.ID, Resolution: ResolutionCounter, CounterAmount: 22000,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCountered, resolved.Status)
		require.NotNil(t, resolved.CounterAmount)
		assert.Equal(t, int64(22000), *resolved.CounterAmount)
	})

	t.Run("resolved offers cannot be resolved again", func(t *testing.T) {
		repo := newFakeOfferRepo()
		offer := submit(t, repo)
		handler := NewRespondOfferHandler(repo)

		_, err := handler.Handle(ctx, RespondOfferCommand{OfferID: offer.ID, Resolution: ResolutionDecline})
		require.NoError(t, err)

		_, err = handler.Handle(ctx, RespondOfferCommand{OfferID: offer.ID, Resolution: ResolutionAccept})
		assert.ErrorIs(t, err, domain.ErrOfferResolved)
	})

	t.Run("unknown resolution is rejected", func(t *testing.T) {
		repo := newFakeOfferRepo()
		offer := submit(t, repo)
		handler := NewRespondOfferHandler(repo)

		_, err := handler.Handle(ctx, RespondOfferCommand{OfferID: offer.ID, Resolution: "haggle"})
		assert.ErrorIs(t, err, domain.ErrInvalidResolution)
	})
}
