package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrika/storefront/internal/custom/domain"
	"github.com/vastrika/storefront/kafka"
)

type fakeRequestRepo struct {
	requests map[string]*domain.Request
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*domain.Request)}
}

func (f *fakeRequestRepo) Create(_ context.Context, request *domain.Request) error {
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRequestRepo) FindByID(_ context.Context, id string) (*domain.Request, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRequestRepo) FindByUserID(context.Context, uint, int, int) ([]domain.Request, int64, error) {
	return nil, 0, nil
}

func (f *fakeRequestRepo) FindAll(context.Context, string, int, int) ([]domain.Request, int64, error) {
	return nil, 0, nil
}

func (f *fakeRequestRepo) Update(_ context.Context, request *domain.Request) error {
	f.requests[request.ID] = request
	return nil
}

type fakeCustomPublisher struct {
	events []kafka.CustomRequestSubmittedEvent
}

func (f *fakeCustomPublisher) PublishCustomRequestSubmitted(_ context.Context, event kafka.CustomRequestSubmittedEvent) error {
	f.events = append(f.events, event)
	return nil
}

func TestSubmitRequestHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a valid design selection", func(t *testing.T) {
		repo := newFakeRequestRepo()
		publisher := &fakeCustomPublisher{}
		handler := NewSubmitRequestHandler(repo, publisher)

		request, err := handler.Handle(ctx, SubmitRequestCommand{
			UserID: 9,
			Border: "peacock",
			Pallu:  "zari",
			Color:  "maroon",
			Notes:  "for a wedding in December",
		})

		require.NoError(t, err)
		assert.Contains(t, request.ID, "CST-")
		assert.Equal(t, domain.StatusSubmitted, request.Status)
		assert.Equal(t, "peacock", request.Border)
		assert.Nil(t, request.QuotedPrice)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, request.ID, publisher.events[0].RequestID)
	})

	t.Run("rejects unknown options", func(t *testing.T) {
		handler := NewSubmitRequestHandler(newFakeRequestRepo(), nil)

		_, err := handler.Handle(ctx, SubmitRequestCommand{
			UserID: 9, Border: "paisley", Pallu: "zari", Color: "maroon",
		})
		assert.ErrorIs(t, err, domain.ErrUnknownOption)

		_, err = handler.Handle(ctx, SubmitRequestCommand{
			UserID: 9, Border: "peacock", Pallu: "fringe", Color: "maroon",
		})
		assert.ErrorIs(t, err, domain.ErrUnknownOption)

		_, err = handler.Handle(ctx, SubmitRequestCommand{
			UserID: 9, Border: "peacock", Pallu: "zari", Color: "teal",
		})
		assert.ErrorIs(t, err, domain.ErrUnknownOption)
	})

	t.Run("rejects missing user", func(t *testing.T) {
		handler := NewSubmitRequestHandler(newFakeRequestRepo(), nil)

		_, err := handler.Handle(ctx, SubmitRequestCommand{
			Border: "peacock", Pallu: "zari", Color: "maroon",
		})
		assert.Error(t, err)
	})
}

func TestQuoteRequestHandler_Handle(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, repo domain.RequestRepository) *domain.Request {
		t.Helper()
		handler := NewSubmitRequestHandler(repo, nil)
		request, err := handler.Handle(ctx, SubmitRequestCommand{
			UserID: 9, Border: "classic", Pallu: "brocade", Color: "gold",
		})
		require.NoError(t, err)
		return request
	}

	t.Run("positive price quotes the request", func(t *testing.T) {
		repo := newFakeRequestRepo()
		request := submit(t, repo)

		handler := NewQuoteRequestHandler(repo)
		quoted, err := handler.Handle(ctx, QuoteRequestCommand{RequestID: request.ID, Price: 32000})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusQuoted, quoted.Status)
		require.NotNil(t, quoted.QuotedPrice)
		assert.Equal(t, int64(32000), *quoted.QuotedPrice)
	})

	t.Run("zero price declines the request", func(t *testing.T) {
		repo := newFakeRequestRepo()
		request := submit(t, repo)

		handler := NewQuoteRequestHandler(repo)
		declined, err := handler.Handle(ctx, QuoteRequestCommand{RequestID: request.ID, Price: 0})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDeclined, declined.Status)
		assert.Nil(t, declined.QuotedPrice)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		handler := NewQuoteRequestHandler(newFakeRequestRepo())

		_, err := handler.Handle(ctx, QuoteRequestCommand{RequestID: "CST-whatever", Price: -1})
		assert.Error(t, err)
	})

	t.Run("resolved requests cannot be quoted again", func(t *testing.T) {
		repo := newFakeRequestRepo()
		request := submit(t, repo)
		handler := NewQuoteRequestHandler(repo)

		_, err := handler.Handle(ctx, QuoteRequestCommand{RequestID: request.ID, Price: 18000})
		require.NoError(t, err)

		_, err = handler.Handle(ctx, QuoteRequestCommand{RequestID: request.ID, Price: 20000})
		assert.ErrorIs(t, err, domain.ErrRequestResolved)
	})

	t.Run("unknown request is not found", func(t *testing.T) {
		handler := NewQuoteRequestHandler(newFakeRequestRepo())

		_, err := handler.Handle(ctx, QuoteRequestCommand{RequestID: "CST-missing", Price: 1000})
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})
}
