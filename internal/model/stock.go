package model

import (
	"time"

	"github.com/google/uuid"
)

// BatchStatus enum constants
const (
	BatchStatusGood    = "Good"
	BatchStatusExpired = "Expired"
	BatchStatusDamaged = "Damaged"
	BatchStatusLost    = "Lost"
)

// StockStatus enum constants, derived from quantities and never stored
const (
	StockStatusOut       = "Out of Stock"
	StockStatusLow       = "Low Stock"
	StockStatusOverstock = "Overstock"
	StockStatusNormal    = "Normal"
)

// AdjustmentType enum constants
const (
	AdjustmentAdd    = "add"
	AdjustmentRemove = "remove"
	AdjustmentSet    = "set"
)

// Batch is a lot-level sub-record owned exclusively by its StockItem.
// Batch quantities are not reconciled against CurrentStock.
type Batch struct {
	BatchNumber string     `json:"batch_number"`
	Quantity    int        `json:"quantity"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	Status      string     `json:"status"` // Good, Expired, Damaged, Lost
}

// StockItem tracks on-hand quantity for a product at a warehouse location
type StockItem struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	SKU          string    `json:"sku"`
	CurrentStock int       `json:"current_stock"`
	MinStock     int       `json:"min_stock"`
	MaxStock     int       `json:"max_stock"`
	WarehouseID  string    `json:"warehouse_id"`
	Location     string    `json:"location"`
	LastUpdated  time.Time `json:"last_updated"`
	Batches      []Batch   `json:"batches"`
}

// Status derives the stock level label. Out of Stock wins over Low Stock,
// Low Stock wins over Overstock (matters when min >= max).
func (s StockItem) Status() string {
	switch {
	case s.CurrentStock == 0:
		return StockStatusOut
	case s.CurrentStock <= s.MinStock:
		return StockStatusLow
	case s.CurrentStock >= s.MaxStock:
		return StockStatusOverstock
	default:
		return StockStatusNormal
	}
}

// IsLowStock reports whether the item is at or below its reorder point
func (s StockItem) IsLowStock() bool {
	return s.CurrentStock <= s.MinStock
}

// HasExpiringBatch reports whether any batch expires on or before the deadline
func (s StockItem) HasExpiringBatch(deadline time.Time) bool {
	for _, b := range s.Batches {
		if b.ExpiryDate != nil && !b.ExpiryDate.After(deadline) {
			return true
		}
	}
	return false
}

// BatchQuantityTotal sums batch quantities for display. It may legitimately
// diverge from CurrentStock since batch edits are not reconciled against it.
func (s StockItem) BatchQuantityTotal() int {
	total := 0
	for _, b := range s.Batches {
		total += b.Quantity
	}
	return total
}

// ApplyAdjustment returns the quantity after an adjustment. Removals floor at
// zero; unknown types leave the quantity unchanged.
func ApplyAdjustment(current int, adjustmentType string, quantity int) int {
	switch adjustmentType {
	case AdjustmentAdd:
		return current + quantity
	case AdjustmentRemove:
		if quantity >= current {
			return 0
		}
		return current - quantity
	case AdjustmentSet:
		return quantity
	default:
		return current
	}
}
