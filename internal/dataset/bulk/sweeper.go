package bulk

import (
	"context"

	"github.com/traceright/dataset-service/internal/dataset/domain"
	"github.com/traceright/dataset-service/pkg/logger"
)

// Sweeper empties collections page by page. Each collection is swept
// independently: a failure is recorded as a zero deleted count and the
// sweep moves on to the remaining collections.
type Sweeper struct {
	store    domain.DocumentStore
	pageSize int
}

// NewSweeper creates a sweeper with the given fetch page size. A
// non-positive or over-ceiling size falls back to domain.DefaultBatchSize.
func NewSweeper(store domain.DocumentStore, pageSize int) *Sweeper {
	if pageSize <= 0 || pageSize > domain.DefaultBatchSize {
		pageSize = domain.DefaultBatchSize
	}
	return &Sweeper{store: store, pageSize: pageSize}
}

// Sweep deletes every document of every named collection and returns the
// number of documents deleted per collection. Deletion order across
// collections does not matter; there is no cascade logic.
func (s *Sweeper) Sweep(ctx context.Context, collections []string) map[string]int {
	results := make(map[string]int, len(collections))
	for _, collection := range collections {
		deleted, err := s.sweepCollection(ctx, collection)
		if err != nil {
			logger.Error(ctx).
				Err(err).
				Str("collection", collection).
				Int("deleted_before_error", deleted).
				Msg("Collection sweep failed")
			results[collection] = 0
			continue
		}
		results[collection] = deleted
	}
	return results
}

// sweepCollection loops fetch/delete until a fetch comes back empty.
func (s *Sweeper) sweepCollection(ctx context.Context, collection string) (int, error) {
	deleted := 0
	for {
		docs, err := s.store.FetchPage(ctx, collection, s.pageSize)
		if err != nil {
			return deleted, err
		}
		if len(docs) == 0 {
			return deleted, nil
		}

		ids := make([]string, len(docs))
		for i, doc := range docs {
			ids[i] = doc.ID
		}
		if err := s.store.DeleteBatch(ctx, collection, ids); err != nil {
			return deleted, err
		}
		deleted += len(ids)
	}
}
