package domain

// DefaultBatchSize is the store's hard per-request mutation ceiling.
const DefaultBatchSize = 500

// ClearConfirmationCode must be supplied verbatim by callers of the clear
// operation. It is a misuse guard, not a security control; authorization is
// enforced separately.
const ClearConfirmationCode = "DELETE_ALL_DATA"

// SeedConfig parameterizes one seeding run. Zero values are replaced by
// defaults; the RNG seed makes runs reproducible.
type SeedConfig struct {
	Suppliers          int     `json:"suppliers"`
	Warehouses         int     `json:"warehouses"`
	Materials          int     `json:"materials"`
	Recipes            int     `json:"recipes"`
	Orders             int     `json:"orders"`
	Batches            int     `json:"batches"`
	Costs              int     `json:"costs"`
	MaxTraceEvents     int     `json:"max_trace_events"`     // per order, at least 1
	InventoryCoverage  float64 `json:"inventory_coverage"`   // fraction of item x warehouse pairs
	BatchSize          int     `json:"batch_size"`           // write ceiling override, capped at DefaultBatchSize
	ContinueOnError    bool    `json:"continue_on_error"`    // false: first stage error aborts the run
	Seed               int64   `json:"seed"`                 // 0: time-based
}

// DefaultSeedConfig returns the standard generation targets.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		Suppliers:         10,
		Warehouses:        4,
		Materials:         50,
		Recipes:           5,
		Orders:            100,
		Batches:           20,
		Costs:             30,
		MaxTraceEvents:    3,
		InventoryCoverage: 0.7,
		BatchSize:         DefaultBatchSize,
	}
}

// Normalize fills zero-valued fields from the defaults and clamps the
// batch size to the store ceiling.
func (c SeedConfig) Normalize() SeedConfig {
	def := DefaultSeedConfig()
	if c.Suppliers <= 0 {
		c.Suppliers = def.Suppliers
	}
	if c.Warehouses <= 0 {
		c.Warehouses = def.Warehouses
	}
	if c.Materials <= 0 {
		c.Materials = def.Materials
	}
	if c.Recipes <= 0 {
		c.Recipes = def.Recipes
	}
	if c.Orders <= 0 {
		c.Orders = def.Orders
	}
	if c.Batches <= 0 {
		c.Batches = def.Batches
	}
	if c.Costs <= 0 {
		c.Costs = def.Costs
	}
	if c.MaxTraceEvents <= 0 {
		c.MaxTraceEvents = def.MaxTraceEvents
	}
	if c.InventoryCoverage <= 0 || c.InventoryCoverage > 1 {
		c.InventoryCoverage = def.InventoryCoverage
	}
	if c.BatchSize <= 0 || c.BatchSize > DefaultBatchSize {
		c.BatchSize = DefaultBatchSize
	}
	return c
}
