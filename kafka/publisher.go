package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/vastrika/storefront/pkg/logger"
)

var publisherTracer = otel.Tracer("kafka-publisher")

// Publisher wraps a sarama sync producer and injects trace context into
// message headers so consumers can continue the same trace.
type Publisher struct {
	producer sarama.SyncProducer
}

func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &Publisher{producer: producer}, nil
}

// Publish serializes the event as JSON and sends it to the given topic.
// The event type and id travel as record headers alongside the W3C trace
// context.
func (p *Publisher) Publish(ctx context.Context, topic, eventType, eventID, key string, event any) error {
	ctx, span := publisherTracer.Start(ctx, fmt.Sprintf("kafka.publish %s", topic),
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("messaging.event_type", eventType),
		),
	)
	defer span.End()

	payload, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(payload),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send message")
		logger.Error(ctx).Err(err).Str("topic", topic).Str("event_type", eventType).Msg("Failed to publish event")
		return fmt.Errorf("failed to publish event: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("messaging.kafka.partition", int64(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	logger.Info(ctx).
		Str("topic", topic).
		Str("event_type", eventType).
		Str("event_id", eventID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")
	return nil
}

// PublishOrderPlaced sends an order placed event keyed by order id.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	return p.Publish(ctx, TopicOrderPlaced, "order.placed", event.EventID, event.OrderID, event)
}

// PublishBargainOfferSubmitted sends a bargain offer event keyed by saree id
// so all offers for a saree land on the same partition.
func (p *Publisher) PublishBargainOfferSubmitted(ctx context.Context, event BargainOfferSubmittedEvent) error {
	return p.Publish(ctx, TopicBargainOfferSubmitted, "bargain.offer_submitted", event.EventID, event.SareeID, event)
}

// PublishCustomRequestSubmitted sends a custom design request event keyed by
// request id.
func (p *Publisher) PublishCustomRequestSubmitted(ctx context.Context, event CustomRequestSubmittedEvent) error {
	return p.Publish(ctx, TopicCustomRequestSubmitted, "custom.request_submitted", event.EventID, event.RequestID, event)
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
