package bulk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceright/dataset-service/internal/dataset/domain"
	"github.com/traceright/dataset-service/internal/dataset/store"
)

// brokenDeleteStore fails every delete for one collection.
type brokenDeleteStore struct {
	*store.MemoryStore
	broken string
}

func (s *brokenDeleteStore) DeleteBatch(ctx context.Context, collection string, ids []string) error {
	if collection == s.broken {
		return errors.New("delete rejected")
	}
	return s.MemoryStore.DeleteBatch(ctx, collection, ids)
}

func fill(t *testing.T, s domain.DocumentStore, collection string, n int) {
	t.Helper()
	ctx := context.Background()
	docs := make([]domain.Document, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, doc(collection, i))
	}
	require.NoError(t, s.CommitBatch(ctx, docs))
}

func TestSweepEmptiesCollectionInPages(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	fill(t, mem, "orders", 1200)

	s := NewSweeper(mem, 500)
	deleted := s.Sweep(ctx, []string{"orders"})

	assert.Equal(t, map[string]int{"orders": 1200}, deleted)
	count, err := mem.Count(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// countingStore records how many fetch pages the sweeper asked for.
type countingStore struct {
	*store.MemoryStore
	fetches int
}

func (s *countingStore) FetchPage(ctx context.Context, collection string, limit int) ([]domain.Document, error) {
	s.fetches++
	return s.MemoryStore.FetchPage(ctx, collection, limit)
}

func TestSweepPagesUntilEmpty(t *testing.T) {
	ctx := context.Background()
	cs := &countingStore{MemoryStore: store.NewMemoryStore()}
	fill(t, cs, "orders", 1200)

	s := NewSweeper(cs, 500)
	deleted := s.Sweep(ctx, []string{"orders"})

	assert.Equal(t, 1200, deleted["orders"])
	// Two full pages, one partial, one empty page to terminate.
	assert.Equal(t, 4, cs.fetches)
}

func TestSweepMultipleCollections(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	fill(t, mem, "suppliers", 3)
	fill(t, mem, "materials", 750)

	s := NewSweeper(mem, 500)
	deleted := s.Sweep(ctx, []string{"suppliers", "materials", "costs"})

	assert.Equal(t, 3, deleted["suppliers"])
	assert.Equal(t, 750, deleted["materials"])
	assert.Equal(t, 0, deleted["costs"])
}

func TestSweepFailureIsIsolated(t *testing.T) {
	ctx := context.Background()
	bs := &brokenDeleteStore{MemoryStore: store.NewMemoryStore(), broken: "orders"}
	fill(t, bs, "orders", 10)
	fill(t, bs, "invoices", 10)

	s := NewSweeper(bs, 500)
	deleted := s.Sweep(ctx, []string{"orders", "invoices"})

	// The broken collection reports zero; its sibling is still emptied.
	assert.Equal(t, 0, deleted["orders"])
	assert.Equal(t, 10, deleted["invoices"])

	count, err := bs.Count(ctx, "invoices")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSweepIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	fill(t, mem, "orders", 20)

	s := NewSweeper(mem, 500)
	first := s.Sweep(ctx, []string{"orders"})
	second := s.Sweep(ctx, []string{"orders"})

	assert.Equal(t, 20, first["orders"])
	assert.Equal(t, 0, second["orders"])
}

func TestSweeperClampsPageSize(t *testing.T) {
	s := NewSweeper(store.NewMemoryStore(), 0)
	assert.Equal(t, domain.DefaultBatchSize, s.pageSize)

	s = NewSweeper(store.NewMemoryStore(), 9999)
	assert.Equal(t, domain.DefaultBatchSize, s.pageSize)
}
