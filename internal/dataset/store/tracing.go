package store

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/traceright/dataset-service/internal/dataset/domain"
)

var tracer = otel.Tracer("document-store")

// TracingStore wraps a DocumentStore with OpenTelemetry spans per
// operation.
type TracingStore struct {
	inner domain.DocumentStore
}

// NewTracingStore decorates the given store.
func NewTracingStore(inner domain.DocumentStore) *TracingStore {
	return &TracingStore{inner: inner}
}

func (s *TracingStore) CommitBatch(ctx context.Context, docs []domain.Document) error {
	ctx, span := tracer.Start(ctx, "store.CommitBatch",
		trace.WithAttributes(
			attribute.Int("store.batch_size", len(docs)),
		),
	)
	defer span.End()

	err := s.inner.CommitBatch(ctx, docs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s *TracingStore) FetchPage(ctx context.Context, collection string, limit int) ([]domain.Document, error) {
	ctx, span := tracer.Start(ctx, "store.FetchPage",
		trace.WithAttributes(
			attribute.String("store.collection", collection),
			attribute.Int("store.limit", limit),
		),
	)
	defer span.End()

	docs, err := s.inner.FetchPage(ctx, collection, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("store.fetched", len(docs)))
	return docs, nil
}

func (s *TracingStore) DeleteBatch(ctx context.Context, collection string, ids []string) error {
	ctx, span := tracer.Start(ctx, "store.DeleteBatch",
		trace.WithAttributes(
			attribute.String("store.collection", collection),
			attribute.Int("store.batch_size", len(ids)),
		),
	)
	defer span.End()

	err := s.inner.DeleteBatch(ctx, collection, ids)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s *TracingStore) Count(ctx context.Context, collection string) (int64, error) {
	ctx, span := tracer.Start(ctx, "store.Count",
		trace.WithAttributes(
			attribute.String("store.collection", collection),
		),
	)
	defer span.End()

	count, err := s.inner.Count(ctx, collection)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(attribute.Int64("store.count", count))
	return count, nil
}
