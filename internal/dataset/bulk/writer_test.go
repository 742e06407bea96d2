package bulk

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceright/dataset-service/internal/dataset/domain"
	"github.com/traceright/dataset-service/internal/dataset/store"
)

// failingStore fails CommitBatch from the nth call on.
type failingStore struct {
	*store.MemoryStore
	commits   int
	failAfter int
}

func (s *failingStore) CommitBatch(ctx context.Context, docs []domain.Document) error {
	s.commits++
	if s.commits > s.failAfter {
		return errors.New("commit rejected")
	}
	return s.MemoryStore.CommitBatch(ctx, docs)
}

func doc(collection string, i int) domain.Document {
	return domain.Document{
		Collection: collection,
		ID:         fmt.Sprintf("%s-%06d", collection, i),
		Data:       []byte(`{}`),
	}
}

func TestWriterFlushesAtCeiling(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	w := NewWriter(mem, 500)

	for i := 0; i < 1234; i++ {
		require.NoError(t, w.Add(ctx, doc("orders", i)))
	}
	require.NoError(t, w.Flush(ctx))

	assert.Equal(t, []int{500, 500, 234}, mem.BatchSizes())
	assert.Equal(t, 1234, w.CommittedIn("orders"))
}

func TestWriterPreservesOrder(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	w := NewWriter(mem, 10)

	for i := 0; i < 25; i++ {
		require.NoError(t, w.Add(ctx, doc("suppliers", i)))
	}
	require.NoError(t, w.Flush(ctx))

	docs := mem.Documents("suppliers")
	require.Len(t, docs, 25)
	for i, d := range docs {
		assert.Equal(t, fmt.Sprintf("suppliers-%06d", i), d.ID)
	}
}

func TestWriterClampsOversizedLimit(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	w := NewWriter(mem, 2000)

	for i := 0; i < domain.DefaultBatchSize+1; i++ {
		require.NoError(t, w.Add(ctx, doc("costs", i)))
	}

	sizes := mem.BatchSizes()
	require.NotEmpty(t, sizes)
	assert.Equal(t, domain.DefaultBatchSize, sizes[0])
}

func TestWriterFlushOnEmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	w := NewWriter(mem, 10)

	require.NoError(t, w.Flush(ctx))
	assert.Empty(t, mem.BatchSizes())
}

func TestWriterMidStreamFailure(t *testing.T) {
	ctx := context.Background()
	fs := &failingStore{MemoryStore: store.NewMemoryStore(), failAfter: 1}
	w := NewWriter(fs, 100)

	var err error
	for i := 0; i < 250 && err == nil; i++ {
		err = w.Add(ctx, doc("orders", i))
	}

	// The second batch fails; the first stays persisted.
	require.Error(t, err)
	assert.Equal(t, []int{100}, fs.BatchSizes())
	assert.Equal(t, 100, w.CommittedIn("orders"))

	count, cerr := fs.Count(ctx, "orders")
	require.NoError(t, cerr)
	assert.Equal(t, int64(100), count)
}
