package store

import (
	"context"
	"sync"

	"github.com/traceright/dataset-service/internal/dataset/domain"
)

// MemoryStore is an in-memory DocumentStore for tests and local runs. It
// preserves per-collection insertion order so paged fetches are
// deterministic, and records the size of every committed batch.
type MemoryStore struct {
	mu         sync.Mutex
	order      map[string][]string
	data       map[string]map[string]domain.Document
	batchSizes []int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		order: make(map[string][]string),
		data:  make(map[string]map[string]domain.Document),
	}
}

func (s *MemoryStore) CommitBatch(_ context.Context, docs []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batchSizes = append(s.batchSizes, len(docs))
	for _, doc := range docs {
		if s.data[doc.Collection] == nil {
			s.data[doc.Collection] = make(map[string]domain.Document)
		}
		if _, exists := s.data[doc.Collection][doc.ID]; !exists {
			s.order[doc.Collection] = append(s.order[doc.Collection], doc.ID)
		}
		s.data[doc.Collection][doc.ID] = doc
	}
	return nil
}

func (s *MemoryStore) FetchPage(_ context.Context, collection string, limit int) ([]domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.order[collection]
	if limit > len(ids) {
		limit = len(ids)
	}
	docs := make([]domain.Document, 0, limit)
	for _, id := range ids[:limit] {
		docs = append(docs, s.data[collection][id])
	}
	return docs, nil
}

func (s *MemoryStore) DeleteBatch(_ context.Context, collection string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
		delete(s.data[collection], id)
	}

	kept := s.order[collection][:0]
	for _, id := range s.order[collection] {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	s.order[collection] = kept
	return nil
}

func (s *MemoryStore) Count(_ context.Context, collection string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.data[collection])), nil
}

// BatchSizes returns the size of every batch committed so far, in order.
func (s *MemoryStore) BatchSizes() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.batchSizes))
	copy(out, s.batchSizes)
	return out
}

// Documents returns all documents of a collection in insertion order.
func (s *MemoryStore) Documents(collection string) []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make([]domain.Document, 0, len(s.order[collection]))
	for _, id := range s.order[collection] {
		docs = append(docs, s.data[collection][id])
	}
	return docs
}
