package kafka

import (
	"context"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/vastrika/storefront/pkg/logger"
)

var consumerTracer = otel.Tracer("kafka-consumer")

// EventHandler processes the raw JSON payload of a single event. The context
// carries the trace extracted from the message headers.
type EventHandler func(ctx context.Context, payload []byte) error

// Consumer subscribes to storefront topics and dispatches messages to
// registered handlers by event type.
type Consumer struct {
	group    sarama.ConsumerGroup
	topics   []string
	mu       sync.RWMutex
	handlers map[string]EventHandler
}

func NewConsumer(brokers []string, groupID string, topics []string) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		group:    group,
		topics:   topics,
		handlers: make(map[string]EventHandler),
	}, nil
}

// RegisterHandler binds a handler to an event type. Messages with an
// unregistered event type are acknowledged and skipped.
func (c *Consumer) RegisterHandler(eventType string, handler EventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[eventType] = handler
}

// Start consumes until the context is cancelled. Rebalances re-enter the
// consume loop, so errors other than context cancellation are logged and
// retried.
func (c *Consumer) Start(ctx context.Context) error {
	handler := &consumerGroupHandler{consumer: c}
	for {
		if err := c.group.Consume(ctx, c.topics, handler); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error(ctx).Err(err).Msg("Consumer group session ended with error")
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

func (c *Consumer) handlerFor(eventType string) (EventHandler, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.handlers[eventType]
	return h, ok
}

type consumerGroupHandler struct {
	consumer *Consumer
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		h.handleMessage(session.Context(), msg)
		session.MarkMessage(msg, "")
	}
	return nil
}

func (h *consumerGroupHandler) handleMessage(ctx context.Context, msg *sarama.ConsumerMessage) {
	carrier := propagation.MapCarrier{}
	var eventType, eventID string
	for _, header := range msg.Headers {
		key := string(header.Key)
		switch key {
		case "event_type":
			eventType = string(header.Value)
		case "event_id":
			eventID = string(header.Value)
		default:
			carrier[key] = string(header.Value)
		}
	}

	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)
	ctx, span := consumerTracer.Start(ctx, fmt.Sprintf("kafka.consume %s", msg.Topic),
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", msg.Topic),
			attribute.String("messaging.event_type", eventType),
			attribute.Int64("messaging.kafka.offset", msg.Offset),
		),
	)
	defer span.End()

	handler, ok := h.consumer.handlerFor(eventType)
	if !ok {
		logger.Debug(ctx).Str("topic", msg.Topic).Str("event_type", eventType).Msg("No handler registered, skipping event")
		return
	}

	if err := handler(ctx, msg.Value); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "handle event")
		logger.Error(ctx).
			Err(err).
			Str("topic", msg.Topic).
			Str("event_type", eventType).
			Str("event_id", eventID).
			Msg("Failed to handle event")
		return
	}

	logger.Info(ctx).
		Str("topic", msg.Topic).
		Str("event_type", eventType).
		Str("event_id", eventID).
		Msg("Event handled")
}
