package command

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceright/dataset-service/internal/dataset/domain"
	"github.com/traceright/dataset-service/internal/dataset/store"
	"github.com/traceright/dataset-service/kafka"
	"github.com/traceright/dataset-service/pkg/apperr"
)

type stubGate struct {
	admin bool
	err   error
}

func (g stubGate) IsAdmin(context.Context, uint) (bool, error) { return g.admin, g.err }

type stubGuard struct {
	locked bool
}

func (g stubGuard) TryLock(context.Context) (func(), bool, error) {
	if g.locked {
		return nil, false, nil
	}
	return func() {}, true, nil
}

type recordingPublisher struct {
	seeded  []kafka.DatasetSeededEvent
	cleared []kafka.DatasetClearedEvent
}

func (p *recordingPublisher) PublishDatasetSeeded(_ context.Context, e kafka.DatasetSeededEvent) error {
	p.seeded = append(p.seeded, e)
	return nil
}

func (p *recordingPublisher) PublishDatasetCleared(_ context.Context, e kafka.DatasetClearedEvent) error {
	p.cleared = append(p.cleared, e)
	return nil
}

func smallConfig() domain.SeedConfig {
	return domain.SeedConfig{
		Suppliers:         2,
		Warehouses:        2,
		Materials:         5,
		Recipes:           2,
		Orders:            4,
		Batches:           3,
		Costs:             2,
		MaxTraceEvents:    2,
		InventoryCoverage: 1.0,
		BatchSize:         500,
		Seed:              42,
	}
}

func TestSeedProducesConfiguredCounts(t *testing.T) {
	mem := store.NewMemoryStore()
	h := NewSeedDatasetHandler(mem, stubGate{admin: true}, nil, nil)

	result, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 1, Config: smallConfig()})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Counts[domain.CollectionSuppliers])
	assert.Equal(t, 5, result.Counts[domain.CollectionMaterials])
	assert.Equal(t, 2, result.Counts[domain.CollectionRecipes])
	assert.Equal(t, 2, result.Counts[domain.CollectionProducts])
	assert.Equal(t, 4, result.Counts[domain.CollectionOrders])
	assert.Equal(t, 3, result.Counts[domain.CollectionBatches])
	assert.Equal(t, 2, result.Counts[domain.CollectionCosts])
	assert.Equal(t, 4, result.Counts[domain.CollectionInvoices])

	// Full coverage: every item x warehouse pair gets a stock row
	assert.Equal(t, 2*(5+2), result.Counts[domain.CollectionInventory])

	// 1 to MaxTraceEvents per order
	assert.GreaterOrEqual(t, result.Counts[domain.CollectionTraceEvents], 4)
	assert.LessOrEqual(t, result.Counts[domain.CollectionTraceEvents], 8)

	// Shipments exist only for orders already on the move
	assert.LessOrEqual(t, result.Counts[domain.CollectionShipments], 4)
}

func TestSeedReferentialIntegrity(t *testing.T) {
	mem := store.NewMemoryStore()
	h := NewSeedDatasetHandler(mem, stubGate{admin: true}, nil, nil)

	_, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 1, Config: smallConfig()})
	require.NoError(t, err)

	ids := func(collection string) map[string]bool {
		set := map[string]bool{}
		for _, d := range mem.Documents(collection) {
			set[d.ID] = true
		}
		return set
	}

	supplierIDs := ids(domain.CollectionSuppliers)
	materialIDs := ids(domain.CollectionMaterials)
	recipeIDs := ids(domain.CollectionRecipes)
	productIDs := ids(domain.CollectionProducts)
	orderIDs := ids(domain.CollectionOrders)

	for _, d := range mem.Documents(domain.CollectionMaterials) {
		var m domain.Material
		require.NoError(t, json.Unmarshal(d.Data, &m))
		assert.True(t, supplierIDs[m.SupplierID], "material references unknown supplier")
	}

	for _, d := range mem.Documents(domain.CollectionRecipes) {
		var r domain.Recipe
		require.NoError(t, json.Unmarshal(d.Data, &r))
		require.NotNil(t, r.ProductID, "recipe missing its product back-reference")
		assert.True(t, productIDs[*r.ProductID])
		for _, ing := range r.Ingredients {
			assert.True(t, materialIDs[ing.MaterialID])
		}
	}

	for _, d := range mem.Documents(domain.CollectionOrders) {
		var o domain.Order
		require.NoError(t, json.Unmarshal(d.Data, &o))
		assert.True(t, supplierIDs[o.SupplierID])
		for _, item := range o.LineItems {
			if item.MaterialID != nil {
				assert.True(t, materialIDs[*item.MaterialID])
			} else {
				require.NotNil(t, item.RecipeID)
				assert.True(t, recipeIDs[*item.RecipeID])
			}
		}
	}

	for _, d := range mem.Documents(domain.CollectionShipments) {
		var s domain.Shipment
		require.NoError(t, json.Unmarshal(d.Data, &s))
		assert.True(t, orderIDs[s.OrderID])
	}

	for _, d := range mem.Documents(domain.CollectionTraceEvents) {
		var ev domain.TraceEvent
		require.NoError(t, json.Unmarshal(d.Data, &ev))
		assert.True(t, orderIDs[ev.OrderID])
	}

	for _, d := range mem.Documents(domain.CollectionInvoices) {
		var inv domain.Invoice
		require.NoError(t, json.Unmarshal(d.Data, &inv))
		assert.True(t, orderIDs[inv.OrderID])
	}

	for _, d := range mem.Documents(domain.CollectionBatches) {
		var b domain.ProductionBatch
		require.NoError(t, json.Unmarshal(d.Data, &b))
		assert.True(t, recipeIDs[b.RecipeID])
	}
}

// commitLogStore records the collection of every committed document in
// commit order.
type commitLogStore struct {
	*store.MemoryStore
	log []string
}

func (s *commitLogStore) CommitBatch(ctx context.Context, docs []domain.Document) error {
	for _, d := range docs {
		s.log = append(s.log, d.Collection)
	}
	return s.MemoryStore.CommitBatch(ctx, docs)
}

func TestSeedCommitsStagesInDependencyOrder(t *testing.T) {
	cl := &commitLogStore{MemoryStore: store.NewMemoryStore()}
	h := NewSeedDatasetHandler(cl, stubGate{admin: true}, nil, nil)

	_, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 1, Config: smallConfig()})
	require.NoError(t, err)

	first := map[string]int{}
	last := map[string]int{}
	for i, c := range cl.log {
		if _, ok := first[c]; !ok {
			first[c] = i
		}
		last[c] = i
	}

	// A collection's first committed document must come after the last
	// document of every collection it references.
	require.Greater(t, first[domain.CollectionMaterials], last[domain.CollectionSuppliers])
	require.Greater(t, first[domain.CollectionRecipes], last[domain.CollectionMaterials])
	require.Greater(t, first[domain.CollectionOrders], last[domain.CollectionProducts])
	require.Greater(t, first[domain.CollectionInvoices], last[domain.CollectionOrders])
	require.Greater(t, first[domain.CollectionTraceEvents], last[domain.CollectionOrders])
}

func TestSeedSmallTargetsScenario(t *testing.T) {
	mem := store.NewMemoryStore()
	h := NewSeedDatasetHandler(mem, stubGate{admin: true}, nil, nil)

	cfg := domain.SeedConfig{
		Suppliers: 2, Warehouses: 1, Materials: 3, Recipes: 1,
		Orders: 4, Batches: 1, Costs: 1, MaxTraceEvents: 1,
		InventoryCoverage: 0.5, BatchSize: 500, Seed: 1,
	}

	result, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 1, Config: cfg})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Counts[domain.CollectionSuppliers])
	assert.Equal(t, 3, result.Counts[domain.CollectionMaterials])
	assert.Equal(t, 1, result.Counts[domain.CollectionRecipes])
	assert.Equal(t, 4, result.Counts[domain.CollectionOrders])

	supplierIDs := map[string]bool{}
	for _, d := range mem.Documents(domain.CollectionSuppliers) {
		supplierIDs[d.ID] = true
	}
	materialIDs := map[string]bool{}
	for _, d := range mem.Documents(domain.CollectionMaterials) {
		var m domain.Material
		require.NoError(t, json.Unmarshal(d.Data, &m))
		assert.True(t, supplierIDs[m.SupplierID])
		materialIDs[d.ID] = true
	}

	// The single recipe draws only from the three materials, clamped to
	// the pool size.
	recipes := mem.Documents(domain.CollectionRecipes)
	require.Len(t, recipes, 1)
	var r domain.Recipe
	require.NoError(t, json.Unmarshal(recipes[0].Data, &r))
	assert.Len(t, r.Ingredients, 3)
	for _, ing := range r.Ingredients {
		assert.True(t, materialIDs[ing.MaterialID])
	}

	for _, d := range mem.Documents(domain.CollectionOrders) {
		var o domain.Order
		require.NoError(t, json.Unmarshal(d.Data, &o))
		assert.True(t, supplierIDs[o.SupplierID])
	}
}

// collectionFailStore rejects every commit that targets one collection.
type collectionFailStore struct {
	*store.MemoryStore
	reject string
}

func (s *collectionFailStore) CommitBatch(ctx context.Context, docs []domain.Document) error {
	for _, d := range docs {
		if d.Collection == s.reject {
			return errors.New("commit rejected")
		}
	}
	return s.MemoryStore.CommitBatch(ctx, docs)
}

// failAfterStore lets the first n commits through and rejects the rest.
type failAfterStore struct {
	*store.MemoryStore
	commits   int
	failAfter int
}

func (s *failAfterStore) CommitBatch(ctx context.Context, docs []domain.Document) error {
	s.commits++
	if s.commits > s.failAfter {
		return errors.New("commit rejected")
	}
	return s.MemoryStore.CommitBatch(ctx, docs)
}

func TestSeedStageFailureAbortsByDefault(t *testing.T) {
	fs := &collectionFailStore{MemoryStore: store.NewMemoryStore(), reject: domain.CollectionCosts}
	h := NewSeedDatasetHandler(fs, stubGate{admin: true}, nil, nil)

	result, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 1, Config: smallConfig()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "costs")

	// Stages before the failure are committed and reported; stages after
	// it never run.
	require.NotNil(t, result)
	assert.Equal(t, 4, result.Counts[domain.CollectionOrders])
	assert.Equal(t, 0, result.Counts[domain.CollectionCosts])
	assert.Equal(t, 0, result.Counts[domain.CollectionTraceEvents])
	assert.Empty(t, fs.Documents(domain.CollectionTraceEvents))
}

func TestSeedStageFailureContinuesWhenConfigured(t *testing.T) {
	fs := &collectionFailStore{MemoryStore: store.NewMemoryStore(), reject: domain.CollectionCosts}
	h := NewSeedDatasetHandler(fs, stubGate{admin: true}, nil, nil)

	cfg := smallConfig()
	cfg.ContinueOnError = true

	result, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 1, Config: cfg})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Counts[domain.CollectionCosts])
	assert.GreaterOrEqual(t, result.Counts[domain.CollectionTraceEvents], 4)
}

func TestSeedDefaultConfigSurfacesCommitFailure(t *testing.T) {
	fs := &failAfterStore{MemoryStore: store.NewMemoryStore(), failAfter: 1}
	h := NewSeedDatasetHandler(fs, stubGate{admin: true}, nil, nil)

	// An all-zero config must abort on the first failed commit, not log
	// and report success.
	result, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 1})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 10, result.Counts[domain.CollectionSuppliers])
	assert.Equal(t, 0, result.Counts[domain.CollectionMaterials])
}

func TestSeedRespectsBatchCeiling(t *testing.T) {
	mem := store.NewMemoryStore()
	h := NewSeedDatasetHandler(mem, stubGate{admin: true}, nil, nil)

	cfg := smallConfig()
	cfg.BatchSize = 10

	_, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 1, Config: cfg})
	require.NoError(t, err)

	for _, size := range mem.BatchSizes() {
		assert.LessOrEqual(t, size, 10)
	}
}

func TestSeedDefaultsApplied(t *testing.T) {
	mem := store.NewMemoryStore()
	h := NewSeedDatasetHandler(mem, stubGate{admin: true}, nil, nil)

	result, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 1, Config: domain.SeedConfig{Seed: 7}})
	require.NoError(t, err)

	assert.Equal(t, 10, result.Counts[domain.CollectionSuppliers])
	assert.Equal(t, 50, result.Counts[domain.CollectionMaterials])
	assert.Equal(t, 100, result.Counts[domain.CollectionOrders])
}

func TestSeedRequiresCallerIdentity(t *testing.T) {
	h := NewSeedDatasetHandler(store.NewMemoryStore(), stubGate{admin: true}, nil, nil)

	_, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 0})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestSeedDeniesNonAdmin(t *testing.T) {
	h := NewSeedDatasetHandler(store.NewMemoryStore(), stubGate{admin: false}, nil, nil)

	_, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 5})
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
}

func TestSeedFailsClosedOnGateError(t *testing.T) {
	h := NewSeedDatasetHandler(store.NewMemoryStore(), stubGate{admin: true, err: errors.New("db down")}, nil, nil)

	_, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 5})
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
}

func TestSeedConflictsWhenGuardHeld(t *testing.T) {
	h := NewSeedDatasetHandler(store.NewMemoryStore(), stubGate{admin: true}, stubGuard{locked: true}, nil)

	_, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 1})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestSeedPublishesAuditEvent(t *testing.T) {
	pub := &recordingPublisher{}
	h := NewSeedDatasetHandler(store.NewMemoryStore(), stubGate{admin: true}, stubGuard{}, pub)

	_, err := h.Handle(context.Background(), SeedDatasetCommand{CallerID: 9, Config: smallConfig()})
	require.NoError(t, err)

	require.Len(t, pub.seeded, 1)
	assert.Equal(t, uint(9), pub.seeded[0].TriggeredBy)
	assert.Equal(t, 2, pub.seeded[0].Counts[domain.CollectionSuppliers])
}
