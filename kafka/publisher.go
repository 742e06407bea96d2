// Package kafka publishes audit events for bulk dataset operations.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/traceright/dataset-service/pkg/logger"
)

// Publisher wraps a synchronous Kafka producer.
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a publisher connected to the given brokers.
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{producer: producer, brokers: brokers}, nil
}

// PublishDatasetSeeded publishes a dataset seeded audit event.
func (p *Publisher) PublishDatasetSeeded(ctx context.Context, event DatasetSeededEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	event.EventType = EventTypeDatasetSeeded
	event.Timestamp = time.Now()

	return p.publish(ctx, "kafka.publish.dataset_seeded", event.EventType, event.EventID, event)
}

// PublishDatasetCleared publishes a dataset cleared audit event.
func (p *Publisher) PublishDatasetCleared(ctx context.Context, event DatasetClearedEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	event.EventType = EventTypeDatasetCleared
	event.Timestamp = time.Now()

	return p.publish(ctx, "kafka.publish.dataset_cleared", event.EventType, event.EventID, event)
}

func (p *Publisher) publish(ctx context.Context, spanName, eventType, eventID string, event interface{}) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicDatasetAudit),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		),
	)
	defer span.End()

	payload, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Propagate trace context through message headers.
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   TopicDatasetAudit,
		Key:     sarama.StringEncoder(eventType),
		Value:   sarama.ByteEncoder(payload),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", TopicDatasetAudit).
			Str("event_type", eventType).
			Msg("Failed to publish audit event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)

	logger.Logger.Info().
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", TopicDatasetAudit).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Audit event published")

	return nil
}

// Close closes the underlying producer.
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
