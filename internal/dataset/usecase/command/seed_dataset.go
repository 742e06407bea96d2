package command

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/traceright/dataset-service/internal/dataset/bulk"
	"github.com/traceright/dataset-service/internal/dataset/domain"
	"github.com/traceright/dataset-service/internal/dataset/generator"
	"github.com/traceright/dataset-service/kafka"
	"github.com/traceright/dataset-service/pkg/apperr"
	"github.com/traceright/dataset-service/pkg/logger"
)

// SeedDatasetCommand represents the command to materialize the synthetic
// dataset.
type SeedDatasetCommand struct {
	CallerID uint
	Config   domain.SeedConfig
}

// SeedResult reports per-collection document counts for one run. Counts
// are best-effort: with ContinueOnError a failed stage contributes what
// it committed before the failure.
type SeedResult struct {
	Counts   map[string]int `json:"counts"`
	Duration time.Duration  `json:"duration"`
}

// SeedDatasetHandler orchestrates generation in strict dependency order:
// suppliers, then materials, then recipes/products, then orders, then the
// order-derived collections, costs and trace events. Every stage's writes
// are flushed before the next stage generates, so a referenced id is
// always materialized before any record referencing it.
type SeedDatasetHandler struct {
	store     domain.DocumentStore
	gate      AdminGate
	guard     RunGuard
	publisher AuditPublisher
}

// NewSeedDatasetHandler creates a seed handler. guard and publisher may be
// nil.
func NewSeedDatasetHandler(store domain.DocumentStore, gate AdminGate, guard RunGuard, publisher AuditPublisher) *SeedDatasetHandler {
	return &SeedDatasetHandler{store: store, gate: gate, guard: guard, publisher: publisher}
}

// Handle executes the seed command.
func (h *SeedDatasetHandler) Handle(ctx context.Context, cmd SeedDatasetCommand) (*SeedResult, error) {
	if cmd.CallerID == 0 {
		return nil, fmt.Errorf("seed requires a caller identity: %w", apperr.ErrUnauthenticated)
	}
	isAdmin, err := h.gate.IsAdmin(ctx, cmd.CallerID)
	if err != nil || !isAdmin {
		return nil, fmt.Errorf("caller %d is not an admin: %w", cmd.CallerID, apperr.ErrPermissionDenied)
	}

	if h.guard != nil {
		release, ok, err := h.guard.TryLock(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire seed lock: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("a seed run is active: %w", apperr.ErrConflict)
		}
		defer release()
	}

	cfg := cmd.Config.Normalize()
	started := time.Now()

	gen := generator.New(cfg.Seed)
	writer := bulk.NewWriter(h.store, cfg.BatchSize)

	run := newSeedRun(gen, writer, cfg)
	err = run.execute(ctx)

	result := &SeedResult{
		Counts:   writer.Committed(),
		Duration: time.Since(started),
	}

	if err != nil {
		logger.Error(ctx).
			Err(err).
			Interface("counts", result.Counts).
			Msg("Seed run failed")
		return result, err
	}

	logger.Info(ctx).
		Interface("counts", result.Counts).
		Dur("duration", result.Duration).
		Msg("Seed run completed")

	if h.publisher != nil {
		event := kafka.DatasetSeededEvent{
			TriggeredBy: cmd.CallerID,
			Counts:      result.Counts,
			DurationMS:  result.Duration.Milliseconds(),
		}
		if err := h.publisher.PublishDatasetSeeded(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to publish seeded event")
		}
	}

	return result, nil
}

// seedRun carries the id pools threaded from stage to stage.
type seedRun struct {
	gen    *generator.Generator
	writer *bulk.Writer
	cfg    domain.SeedConfig

	supplierIDs []string
	materials   []*domain.Material
	materialIDs []string
	recipes     []*domain.Recipe
	recipeIDs   []string
	products    []*domain.Product
	orders      []*domain.Order
}

func newSeedRun(gen *generator.Generator, writer *bulk.Writer, cfg domain.SeedConfig) *seedRun {
	return &seedRun{gen: gen, writer: writer, cfg: cfg}
}

// execute runs all stages in dependency order. The first stage error stops
// the run unless ContinueOnError is set, in which case the error is logged,
// the stage's dependents are skipped when their parent pool stayed empty,
// and the run continues.
func (r *seedRun) execute(ctx context.Context) error {
	stages := []struct {
		name  string
		ready func() bool
		fn    func(context.Context) error
	}{
		{"suppliers", func() bool { return true }, r.seedSuppliers},
		{"materials", func() bool { return len(r.supplierIDs) > 0 }, r.seedMaterials},
		{"recipes_products", func() bool { return len(r.materials) > 0 }, r.seedRecipesAndProducts},
		{"orders", func() bool { return len(r.supplierIDs) > 0 && len(r.materialIDs) > 0 }, r.seedOrders},
		{"shipments", func() bool { return len(r.orders) > 0 }, r.seedShipments},
		{"inventory", func() bool { return len(r.materials) > 0 }, r.seedInventory},
		{"batches", func() bool { return len(r.recipes) > 0 }, r.seedBatches},
		{"invoices", func() bool { return len(r.orders) > 0 }, r.seedInvoices},
		{"costs", func() bool { return true }, r.seedCosts},
		{"trace_events", func() bool { return len(r.orders) > 0 }, r.seedTraceEvents},
	}

	for _, stage := range stages {
		if !stage.ready() {
			logger.Warn(ctx).Str("stage", stage.name).Msg("Skipping stage: parent pool is empty")
			continue
		}
		if err := stage.fn(ctx); err != nil {
			if !r.cfg.ContinueOnError {
				return fmt.Errorf("stage %s: %w", stage.name, err)
			}
			logger.Error(ctx).Err(err).Str("stage", stage.name).Msg("Stage failed, continuing")
		}
	}
	return nil
}

// add marshals a record and appends it to the batched writer.
func (r *seedRun) add(ctx context.Context, collection, id string, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", collection, err)
	}
	return r.writer.Add(ctx, domain.Document{Collection: collection, ID: id, Data: data})
}

func (r *seedRun) seedSuppliers(ctx context.Context) error {
	for i := 0; i < r.cfg.Suppliers; i++ {
		supplier := r.gen.Supplier(i)
		if err := r.add(ctx, domain.CollectionSuppliers, supplier.ID, supplier); err != nil {
			return err
		}
		r.supplierIDs = append(r.supplierIDs, supplier.ID)
	}
	return r.writer.Flush(ctx)
}

func (r *seedRun) seedMaterials(ctx context.Context) error {
	for i := 0; i < r.cfg.Materials; i++ {
		material := r.gen.Material(i, r.supplierIDs)
		if err := r.add(ctx, domain.CollectionMaterials, material.ID, material); err != nil {
			return err
		}
		r.materials = append(r.materials, material)
		r.materialIDs = append(r.materialIDs, material.ID)
	}
	return r.writer.Flush(ctx)
}

// seedRecipesAndProducts creates recipe/product pairs. Both ids are known
// locally before either is written, so the recipe can carry its product
// back-reference without a forward reference into uncreated data.
func (r *seedRun) seedRecipesAndProducts(ctx context.Context) error {
	unitCosts := make(map[string]float64, len(r.materials))
	for _, m := range r.materials {
		unitCosts[m.ID] = m.UnitCost
	}

	for i := 0; i < r.cfg.Recipes; i++ {
		recipe := r.gen.Recipe(i, r.materials)
		product := r.gen.Product(i, recipe, unitCosts)
		recipe.ProductID = &product.ID

		r.recipes = append(r.recipes, recipe)
		r.recipeIDs = append(r.recipeIDs, recipe.ID)
		r.products = append(r.products, product)
	}

	for _, recipe := range r.recipes {
		if err := r.add(ctx, domain.CollectionRecipes, recipe.ID, recipe); err != nil {
			return err
		}
	}
	for _, product := range r.products {
		if err := r.add(ctx, domain.CollectionProducts, product.ID, product); err != nil {
			return err
		}
	}
	return r.writer.Flush(ctx)
}

func (r *seedRun) seedOrders(ctx context.Context) error {
	for i := 0; i < r.cfg.Orders; i++ {
		order := r.gen.Order(i, r.supplierIDs, r.materialIDs, r.recipeIDs)
		if err := r.add(ctx, domain.CollectionOrders, order.ID, order); err != nil {
			return err
		}
		r.orders = append(r.orders, order)
	}
	return r.writer.Flush(ctx)
}

// seedShipments creates shipments only for orders already on the move.
func (r *seedRun) seedShipments(ctx context.Context) error {
	shipped := make(map[string]bool, len(domain.ShippedStatuses))
	for _, s := range domain.ShippedStatuses {
		shipped[s] = true
	}

	for _, order := range r.orders {
		if !shipped[order.Status] {
			continue
		}
		shipment := r.gen.Shipment(order)
		if err := r.add(ctx, domain.CollectionShipments, shipment.ID, shipment); err != nil {
			return err
		}
	}
	return r.writer.Flush(ctx)
}

// seedInventory covers a random fraction of item x warehouse pairs.
func (r *seedRun) seedInventory(ctx context.Context) error {
	type item struct{ id, sku string }
	items := make([]item, 0, len(r.materials)+len(r.products))
	for _, m := range r.materials {
		items = append(items, item{m.ID, m.SKU})
	}
	for _, p := range r.products {
		items = append(items, item{p.ID, p.SKU})
	}

	for _, warehouseID := range generator.WarehouseIDs(r.cfg.Warehouses) {
		for _, it := range items {
			if !r.gen.Include(r.cfg.InventoryCoverage) {
				continue
			}
			record := r.gen.InventoryRecord(warehouseID, it.id, it.sku)
			if err := r.add(ctx, domain.CollectionInventory, record.ID, record); err != nil {
				return err
			}
		}
	}
	return r.writer.Flush(ctx)
}

func (r *seedRun) seedBatches(ctx context.Context) error {
	for i := 0; i < r.cfg.Batches; i++ {
		batch := r.gen.ProductionBatch(i, r.recipes)
		if err := r.add(ctx, domain.CollectionBatches, batch.ID, batch); err != nil {
			return err
		}
	}
	return r.writer.Flush(ctx)
}

func (r *seedRun) seedInvoices(ctx context.Context) error {
	for i, order := range r.orders {
		invoice := r.gen.Invoice(i, order)
		if err := r.add(ctx, domain.CollectionInvoices, invoice.ID, invoice); err != nil {
			return err
		}
	}
	return r.writer.Flush(ctx)
}

func (r *seedRun) seedCosts(ctx context.Context) error {
	for i := 0; i < r.cfg.Costs; i++ {
		cost := r.gen.CostEntry(i)
		if err := r.add(ctx, domain.CollectionCosts, cost.ID, cost); err != nil {
			return err
		}
	}
	return r.writer.Flush(ctx)
}

func (r *seedRun) seedTraceEvents(ctx context.Context) error {
	for _, order := range r.orders {
		for _, event := range r.gen.TraceEvents(order.ID, r.cfg.MaxTraceEvents) {
			if err := r.add(ctx, domain.CollectionTraceEvents, event.ID, event); err != nil {
				return err
			}
		}
	}
	return r.writer.Flush(ctx)
}
