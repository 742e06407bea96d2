package domain

import "time"

// Collection names. One collection per entity type; documents are keyed by
// a generated id and written once per seed run.
const (
	CollectionSuppliers   = "suppliers"
	CollectionMaterials   = "materials"
	CollectionRecipes     = "recipes"
	CollectionProducts    = "products"
	CollectionOrders      = "orders"
	CollectionShipments   = "shipments"
	CollectionInventory   = "inventory"
	CollectionBatches     = "batches"
	CollectionInvoices    = "invoices"
	CollectionCosts       = "costs"
	CollectionTraceEvents = "trace_events"
)

// AllCollections lists every seeded collection, in creation order.
func AllCollections() []string {
	return []string{
		CollectionSuppliers,
		CollectionMaterials,
		CollectionRecipes,
		CollectionProducts,
		CollectionOrders,
		CollectionShipments,
		CollectionInventory,
		CollectionBatches,
		CollectionInvoices,
		CollectionCosts,
		CollectionTraceEvents,
	}
}

// Supplier statuses
const (
	SupplierActive   = "active"
	SupplierInactive = "inactive"
	SupplierOnHold   = "on_hold"
)

// Order types
const (
	OrderTypePurchase = "purchase"
	OrderTypeSale     = "sale"
	OrderTypeTransfer = "transfer"
)

// Order statuses
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderInTransit  = "in_transit"
	OrderDelivered  = "delivered"
	OrderDelayed    = "delayed"
	OrderCancelled  = "cancelled"
)

// OrderStatuses enumerates all order statuses.
var OrderStatuses = []string{
	OrderPending, OrderConfirmed, OrderProcessing,
	OrderInTransit, OrderDelivered, OrderDelayed, OrderCancelled,
}

// ShippedStatuses is the subset of order statuses for which a shipment
// document is created.
var ShippedStatuses = []string{OrderInTransit, OrderDelivered, OrderDelayed}

// Batch statuses
const (
	BatchScheduled  = "scheduled"
	BatchInProgress = "in_progress"
	BatchCompleted  = "completed"
	BatchFailed     = "failed"
)

// Invoice statuses
const (
	InvoicePaid    = "paid"
	InvoicePending = "pending"
	InvoiceOverdue = "overdue"
)

// Inventory item types, inferred from the SKU prefix.
const (
	ItemTypeMaterial = "material"
	ItemTypeProduct  = "product"
)

// Trace event types
var TraceEventTypes = []string{
	"created", "picked_up", "in_transit", "customs_cleared",
	"quality_check", "delivered", "exception",
}

// Cost categories
var CostCategories = []string{
	"labor", "transport", "storage", "utilities", "maintenance", "packaging",
}

// GeoPoint is a named location with coordinates.
type GeoPoint struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Supplier represents a supplier profile with performance scores.
type Supplier struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ContactName    string    `json:"contact_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Country        string    `json:"country"`
	OnTimeRate     float64   `json:"on_time_rate"`
	QualityRate    float64   `json:"quality_rate"`
	ResponseRate   float64   `json:"response_rate"`
	Rating         float64   `json:"rating"`
	LeadTimeDays   int       `json:"lead_time_days"`
	Status         string    `json:"status"`
	Certifications []string  `json:"certifications"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Material is a raw material sourced from a supplier.
type Material struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SKU           string    `json:"sku"`
	Category      string    `json:"category"`
	UnitCost      float64   `json:"unit_cost"`
	UnitOfMeasure string    `json:"unit_of_measure"`
	ReorderPoint  int       `json:"reorder_point"`
	StockLevel    int       `json:"stock_level"`
	SupplierID    string    `json:"supplier_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// Ingredient is one material line of a recipe.
type Ingredient struct {
	MaterialID string  `json:"material_id"`
	Quantity   float64 `json:"quantity"`
}

// Recipe describes how a product is made from materials.
type Recipe struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	SKU            string       `json:"sku"`
	Ingredients    []Ingredient `json:"ingredients"`
	OutputQuantity int          `json:"output_quantity"`
	ProductID      *string      `json:"product_id,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Product is a finished good produced by a recipe. Price is derived from
// the summed ingredient cost times a margin multiplier at generation time.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	RecipeID    string    `json:"recipe_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// LineItem is one line of an order. Exactly one of MaterialID or RecipeID
// is set. TotalPrice always equals Quantity * UnitPrice.
type LineItem struct {
	MaterialID *string `json:"material_id,omitempty"`
	RecipeID   *string `json:"recipe_id,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Order is a purchase, sale or transfer order. TotalAmount equals the sum
// of its line item totals at creation time and is never recomputed.
type Order struct {
	ID            string     `json:"id"`
	OrderNumber   string     `json:"order_number"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	LineItems     []LineItem `json:"line_items"`
	TotalAmount   float64    `json:"total_amount"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	SupplierID    string     `json:"supplier_id"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Shipment tracks the movement of an order that has left the warehouse.
type Shipment struct {
	ID                string     `json:"id"`
	OrderID           string     `json:"order_id"`
	Carrier           string     `json:"carrier"`
	TrackingNumber    string     `json:"tracking_number"`
	Status            string     `json:"status"`
	Origin            GeoPoint   `json:"origin"`
	Destination       GeoPoint   `json:"destination"`
	EstimatedDelivery time.Time  `json:"estimated_delivery"`
	ActualDelivery    *time.Time `json:"actual_delivery,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// InventoryRecord is the stock of one item in one warehouse. Its document
// id is the composite "<warehouse>_<item>".
type InventoryRecord struct {
	ID              string    `json:"id"`
	WarehouseID     string    `json:"warehouse_id"`
	ItemID          string    `json:"item_id"`
	ItemType        string    `json:"item_type"`
	Quantity        int       `json:"quantity"`
	LastRestockedAt time.Time `json:"last_restocked_at"`
}

// IngredientConsumption records planned vs actual material usage of a
// production batch.
type IngredientConsumption struct {
	MaterialID string  `json:"material_id"`
	Planned    float64 `json:"planned"`
	Actual     float64 `json:"actual"`
}

// ProductionBatch is one manufacturing run of a recipe.
type ProductionBatch struct {
	ID               string                  `json:"id"`
	BatchNumber      string                  `json:"batch_number"`
	RecipeID         string                  `json:"recipe_id"`
	ProductID        string                  `json:"product_id"`
	Status           string                  `json:"status"`
	StartedAt        time.Time               `json:"started_at"`
	CompletedAt      *time.Time              `json:"completed_at,omitempty"`
	Consumption      []IngredientConsumption `json:"consumption"`
	QuantityProduced int                     `json:"quantity_produced"`
}

// Invoice bills an order. Amount is the order total times a markup factor,
// fixed at creation.
type Invoice struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	OrderID       string    `json:"order_id"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	IssuedAt      time.Time `json:"issued_at"`
	DueDate       time.Time `json:"due_date"`
}

// CostEntry is a standalone operational cost with no references.
type CostEntry struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// TraceMetadata is the optional sensor payload of a trace event.
type TraceMetadata struct {
	BatchNumber string   `json:"batch_number"`
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
}

// TraceEvent is one step in an order's chain of custody.
type TraceEvent struct {
	ID               string        `json:"id"`
	OrderID          string        `json:"order_id"`
	EventType        string        `json:"event_type"`
	Timestamp        time.Time     `json:"timestamp"`
	Location         GeoPoint      `json:"location"`
	ResponsibleParty string        `json:"responsible_party"`
	Detail           string        `json:"detail"`
	Metadata         TraceMetadata `json:"metadata"`
}
