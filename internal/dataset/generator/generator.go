// Package generator produces pseudo-random, schema-shaped supply-chain
// records. Generation is pure: no I/O, and a caller-supplied RNG seed makes
// runs reproducible. Entity methods that reference parents take a pool of
// already-created ids and draw from it uniformly at random.
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/traceright/dataset-service/internal/dataset/domain"
)

// Generator holds the random source for one run.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New creates a generator. A zero seed selects a time-based one.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now().UTC(),
	}
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func (g *Generator) between(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

func (g *Generator) betweenF(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// money rounds to cents so derived sums stay stable.
func money(v float64) float64 {
	return math.Round(v*100) / 100
}

// chance reports true with probability p.
func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func (g *Generator) personName() string {
	return g.pick(firstNames) + " " + g.pick(lastNames)
}

func (g *Generator) companyName() string {
	return g.pick(companyWords) + " " + g.pick(companySuffixes)
}

func (g *Generator) sentence(words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = g.pick(loremWords)
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func (g *Generator) phone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", g.between(200, 989), g.rng.Intn(1000), g.rng.Intn(10000))
}

func (g *Generator) city() domain.GeoPoint {
	return cities[g.rng.Intn(len(cities))]
}

func (g *Generator) pastTime(maxDaysBack int) time.Time {
	return g.now.Add(-time.Duration(g.rng.Intn(maxDaysBack*24)) * time.Hour)
}

func (g *Generator) trackingNumber() string {
	return fmt.Sprintf("1Z%012d", g.rng.Int63n(1_000_000_000_000))
}

// WarehouseIDs returns the fixed warehouse identifiers for a run.
func WarehouseIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("WH-%02d", i+1)
	}
	return ids
}

// Supplier generates one supplier. seq keeps names and emails unique.
func (g *Generator) Supplier(seq int) *domain.Supplier {
	contact := g.personName()
	company := g.companyName()
	created := g.pastTime(365)

	certCount := g.between(1, 3)
	certs := make([]string, 0, certCount)
	seen := map[string]bool{}
	for len(certs) < certCount {
		c := g.pick(certifications)
		if !seen[c] {
			seen[c] = true
			certs = append(certs, c)
		}
	}

	statuses := []string{domain.SupplierActive, domain.SupplierInactive, domain.SupplierOnHold}

	return &domain.Supplier{
		ID:          uuid.NewString(),
		Name:        fmt.Sprintf("%s %d", company, seq+1),
		ContactName: contact,
		Email: fmt.Sprintf("%s.%d@%s", strings.ToLower(strings.Fields(contact)[0]), seq+1,
			strings.ToLower(strings.ReplaceAll(company, " ", ""))+".com"),
		Phone:          g.phone(),
		Address:        fmt.Sprintf("%d %s Street", g.between(1, 999), g.pick(companyWords)),
		City:           g.city().Name,
		Country:        g.pick(countries),
		OnTimeRate:     money(g.betweenF(80, 100)),
		QualityRate:    money(g.betweenF(85, 100)),
		ResponseRate:   money(g.betweenF(75, 100)),
		Rating:         money(g.betweenF(3.0, 5.0)),
		LeadTimeDays:   g.between(5, 25),
		Status:         g.pick(statuses),
		Certifications: certs,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

// Material generates one material referencing a random supplier from the
// given pool.
func (g *Generator) Material(seq int, supplierIDs []string) *domain.Material {
	return &domain.Material{
		ID:            uuid.NewString(),
		Name:          fmt.Sprintf("%s %d", g.pick(materialNames), seq+1),
		SKU:           fmt.Sprintf("MAT-%05d", seq+1),
		Category:      g.pick(materialCategories),
		UnitCost:      money(g.betweenF(0.5, 50)),
		UnitOfMeasure: g.pick(unitsOfMeasure),
		ReorderPoint:  g.between(10, 100),
		StockLevel:    g.between(0, 500),
		SupplierID:    supplierIDs[g.rng.Intn(len(supplierIDs))],
		CreatedAt:     g.pastTime(180),
	}
}

// Recipe generates one recipe with 3-8 distinct ingredients drawn from the
// material pool (fewer when the pool is smaller). ProductID is filled in by
// the caller once the companion product exists.
func (g *Generator) Recipe(seq int, materials []*domain.Material) *domain.Recipe {
	count := g.between(3, 8)
	if count > len(materials) {
		count = len(materials)
	}

	perm := g.rng.Perm(len(materials))
	ingredients := make([]domain.Ingredient, count)
	for i := 0; i < count; i++ {
		ingredients[i] = domain.Ingredient{
			MaterialID: materials[perm[i]].ID,
			Quantity:   money(g.betweenF(0.5, 10)),
		}
	}

	return &domain.Recipe{
		ID:             uuid.NewString(),
		Name:           fmt.Sprintf("%s %s", g.pick(productAdjectives), g.pick(productNouns)),
		SKU:            fmt.Sprintf("RCP-%03d", seq+1),
		Ingredients:    ingredients,
		OutputQuantity: g.between(10, 100),
		CreatedAt:      g.pastTime(180),
	}
}

// Product generates the finished good for a recipe. Price is the summed
// ingredient cost times a margin multiplier, never an independent random.
func (g *Generator) Product(seq int, recipe *domain.Recipe, unitCostByMaterial map[string]float64) *domain.Product {
	var cost float64
	for _, ing := range recipe.Ingredients {
		cost += ing.Quantity * unitCostByMaterial[ing.MaterialID]
	}
	margin := g.betweenF(1.2, 1.8)

	return &domain.Product{
		ID:          uuid.NewString(),
		Name:        recipe.Name,
		SKU:         fmt.Sprintf("PRD-%05d", seq+1),
		Description: g.sentence(g.between(6, 12)),
		Price:       money(cost * margin),
		RecipeID:    recipe.ID,
		CreatedAt:   recipe.CreatedAt,
	}
}

// Order generates one order with 1-5 line items. Each line references
// either a material or a recipe; totals are derived, not randomized.
func (g *Generator) Order(seq int, supplierIDs, materialIDs, recipeIDs []string) *domain.Order {
	types := []string{domain.OrderTypePurchase, domain.OrderTypeSale, domain.OrderTypeTransfer}

	count := g.between(1, 5)
	items := make([]domain.LineItem, count)
	var total float64
	for i := range items {
		item := domain.LineItem{
			Quantity:  g.between(1, 50),
			UnitPrice: money(g.betweenF(1, 200)),
		}
		if len(recipeIDs) > 0 && g.chance(0.3) {
			id := recipeIDs[g.rng.Intn(len(recipeIDs))]
			item.RecipeID = &id
		} else {
			id := materialIDs[g.rng.Intn(len(materialIDs))]
			item.MaterialID = &id
		}
		item.TotalPrice = money(float64(item.Quantity) * item.UnitPrice)
		total += item.TotalPrice
		items[i] = item
	}

	created := g.pastTime(90)
	order := &domain.Order{
		ID:           uuid.NewString(),
		OrderNumber:  fmt.Sprintf("ORD-%08d", seq+1),
		Type:         g.pick(types),
		Status:       g.pick(domain.OrderStatuses),
		LineItems:    items,
		TotalAmount:  money(total),
		CustomerName: g.personName(),
		SupplierID:   supplierIDs[g.rng.Intn(len(supplierIDs))],
		CreatedAt:    created,
		UpdatedAt:    created.Add(time.Duration(g.rng.Intn(72)) * time.Hour),
	}
	order.CustomerEmail = fmt.Sprintf("%s.%d@example.com",
		strings.ToLower(strings.Fields(order.CustomerName)[0]), seq+1)
	if g.chance(0.5) {
		notes := g.sentence(g.between(4, 10))
		order.Notes = &notes
	}
	return order
}

// Shipment generates the shipment of an in-transit, delivered or delayed
// order. The shipment status mirrors the order status.
func (g *Generator) Shipment(order *domain.Order) *domain.Shipment {
	origin := g.city()
	dest := g.city()
	for dest.Name == origin.Name {
		dest = g.city()
	}

	estimated := order.CreatedAt.Add(time.Duration(g.between(3, 21)) * 24 * time.Hour)
	s := &domain.Shipment{
		ID:                uuid.NewString(),
		OrderID:           order.ID,
		Carrier:           g.pick(carriers),
		TrackingNumber:    g.trackingNumber(),
		Status:            order.Status,
		Origin:            origin,
		Destination:       dest,
		EstimatedDelivery: estimated,
		CreatedAt:         order.CreatedAt,
	}
	if order.Status == domain.OrderDelivered {
		actual := estimated.Add(time.Duration(g.between(-48, 48)) * time.Hour)
		s.ActualDelivery = &actual
	}
	return s
}

// InventoryRecord generates the stock row for one item in one warehouse.
// The item type is inferred from the SKU prefix.
func (g *Generator) InventoryRecord(warehouseID, itemID, sku string) *domain.InventoryRecord {
	itemType := domain.ItemTypeProduct
	if strings.HasPrefix(sku, "MAT-") {
		itemType = domain.ItemTypeMaterial
	}
	return &domain.InventoryRecord{
		ID:              fmt.Sprintf("%s_%s", warehouseID, itemID),
		WarehouseID:     warehouseID,
		ItemID:          itemID,
		ItemType:        itemType,
		Quantity:        g.between(0, 1000),
		LastRestockedAt: g.pastTime(30),
	}
}

// ProductionBatch generates one manufacturing run of a randomly chosen
// recipe, recording planned vs actual consumption per ingredient.
func (g *Generator) ProductionBatch(seq int, recipes []*domain.Recipe) *domain.ProductionBatch {
	recipe := recipes[g.rng.Intn(len(recipes))]
	statuses := []string{domain.BatchScheduled, domain.BatchInProgress, domain.BatchCompleted, domain.BatchFailed}
	status := g.pick(statuses)

	runs := float64(g.between(1, 10))
	consumption := make([]domain.IngredientConsumption, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		planned := money(ing.Quantity * runs)
		consumption[i] = domain.IngredientConsumption{
			MaterialID: ing.MaterialID,
			Planned:    planned,
			Actual:     money(planned * g.betweenF(0.9, 1.1)),
		}
	}

	started := g.pastTime(60)
	batch := &domain.ProductionBatch{
		ID:          uuid.NewString(),
		BatchNumber: fmt.Sprintf("BATCH-%06d", seq+1),
		RecipeID:    recipe.ID,
		Status:      status,
		StartedAt:   started,
		Consumption: consumption,
	}
	if recipe.ProductID != nil {
		batch.ProductID = *recipe.ProductID
	}
	if status == domain.BatchCompleted || status == domain.BatchFailed {
		completed := started.Add(time.Duration(g.between(2, 48)) * time.Hour)
		batch.CompletedAt = &completed
		if status == domain.BatchCompleted {
			batch.QuantityProduced = int(runs) * recipe.OutputQuantity
		}
	}
	return batch
}

// Invoice generates the invoice of an order. Amount is the order total
// times a markup factor, fixed here and never recomputed.
func (g *Generator) Invoice(seq int, order *domain.Order) *domain.Invoice {
	statuses := []string{domain.InvoicePaid, domain.InvoicePending, domain.InvoiceOverdue}
	issued := order.CreatedAt.Add(24 * time.Hour)
	return &domain.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: fmt.Sprintf("INV-%08d", seq+1),
		OrderID:       order.ID,
		Amount:        money(order.TotalAmount * g.betweenF(1.0, 1.15)),
		Status:        g.pick(statuses),
		IssuedAt:      issued,
		DueDate:       issued.Add(30 * 24 * time.Hour),
	}
}

// CostEntry generates one standalone cost row.
func (g *Generator) CostEntry(seq int) *domain.CostEntry {
	return &domain.CostEntry{
		ID:          uuid.NewString(),
		Category:    g.pick(domain.CostCategories),
		Amount:      money(g.betweenF(100, 10000)),
		Date:        g.pastTime(90),
		Description: g.sentence(g.between(4, 10)),
	}
}

// Include reports whether a conditionally generated record should exist,
// with probability p.
func (g *Generator) Include(p float64) bool {
	return g.chance(p)
}

// TraceEvents generates between 1 and max chain-of-custody events for an
// order.
func (g *Generator) TraceEvents(orderID string, max int) []*domain.TraceEvent {
	count := g.between(1, max)
	events := make([]*domain.TraceEvent, count)
	for i := range events {
		events[i] = g.TraceEvent(orderID)
	}
	return events
}

// TraceEvent generates one chain-of-custody event for an order. Sensor
// metadata is populated probabilistically and nullable when absent.
func (g *Generator) TraceEvent(orderID string) *domain.TraceEvent {
	ev := &domain.TraceEvent{
		ID:               uuid.NewString(),
		OrderID:          orderID,
		EventType:        g.pick(domain.TraceEventTypes),
		Timestamp:        g.pastTime(30),
		Location:         g.city(),
		ResponsibleParty: g.pick(responsibleParties),
		Detail:           g.sentence(g.between(4, 8)),
		Metadata: domain.TraceMetadata{
			BatchNumber: fmt.Sprintf("BATCH-%06d", g.between(1, 999999)),
		},
	}
	if g.chance(0.5) {
		t := money(g.betweenF(-5, 25))
		ev.Metadata.Temperature = &t
	}
	if g.chance(0.5) {
		h := money(g.betweenF(20, 90))
		ev.Metadata.Humidity = &h
	}
	return ev
}
