package query

import (
	"context"
	"fmt"

	"github.com/traceright/dataset-service/internal/dataset/domain"
)

// GetCountsQuery asks for the current document count of every seeded
// collection.
type GetCountsQuery struct {
	Collections []string
}

// GetCountsHandler handles the counts query.
type GetCountsHandler struct {
	store domain.DocumentStore
}

// NewGetCountsHandler creates a counts query handler.
func NewGetCountsHandler(store domain.DocumentStore) *GetCountsHandler {
	return &GetCountsHandler{store: store}
}

// Handle returns collection name to document count.
func (h *GetCountsHandler) Handle(ctx context.Context, q GetCountsQuery) (map[string]int64, error) {
	collections := q.Collections
	if len(collections) == 0 {
		collections = domain.AllCollections()
	}

	counts := make(map[string]int64, len(collections))
	for _, collection := range collections {
		count, err := h.store.Count(ctx, collection)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", collection, err)
		}
		counts[collection] = count
	}
	return counts, nil
}
