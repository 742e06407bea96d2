// Package bulk implements the batched write committer and the bulk
// deletion sweeper. Both take the document store as an explicit dependency
// and never exceed the store's per-request operation ceiling.
package bulk

import (
	"context"
	"fmt"

	"github.com/traceright/dataset-service/internal/dataset/domain"
	"github.com/traceright/dataset-service/pkg/logger"
)

// Writer accumulates pending writes and flushes them in fixed-size chunks.
// Writes are committed in append order, batch by batch, each commit awaited
// before the next begins. There is no cross-batch atomicity: a failed
// commit leaves earlier batches persisted and everything from the failed
// batch on uncommitted.
type Writer struct {
	store     domain.DocumentStore
	limit     int
	pending   []domain.Document
	committed map[string]int
}

// NewWriter creates a writer with the given batch ceiling. A non-positive
// or over-ceiling limit falls back to domain.DefaultBatchSize.
func NewWriter(store domain.DocumentStore, limit int) *Writer {
	if limit <= 0 || limit > domain.DefaultBatchSize {
		limit = domain.DefaultBatchSize
	}
	return &Writer{
		store:     store,
		limit:     limit,
		pending:   make([]domain.Document, 0, limit),
		committed: make(map[string]int),
	}
}

// Add appends a write. When the accumulator reaches the ceiling it is
// flushed before Add returns.
func (w *Writer) Add(ctx context.Context, doc domain.Document) error {
	w.pending = append(w.pending, doc)
	if len(w.pending) >= w.limit {
		return w.Flush(ctx)
	}
	return nil
}

// Flush commits any pending remainder. Safe to call with nothing pending.
func (w *Writer) Flush(ctx context.Context) error {
	if len(w.pending) == 0 {
		return nil
	}

	batch := w.pending
	w.pending = make([]domain.Document, 0, w.limit)

	if err := w.store.CommitBatch(ctx, batch); err != nil {
		logger.Error(ctx).
			Err(err).
			Int("batch_size", len(batch)).
			Msg("Batch commit failed")
		return fmt.Errorf("failed to commit batch of %d documents: %w", len(batch), err)
	}

	for _, doc := range batch {
		w.committed[doc.Collection]++
	}
	return nil
}

// Committed returns the number of documents committed per collection so
// far. Counts are best-effort from the caller's perspective: a later batch
// failure does not roll them back.
func (w *Writer) Committed() map[string]int {
	out := make(map[string]int, len(w.committed))
	for k, v := range w.committed {
		out[k] = v
	}
	return out
}

// CommittedIn returns the committed count for one collection.
func (w *Writer) CommittedIn(collection string) int {
	return w.committed[collection]
}
