package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransferStatus enum constants
const (
	TransferStatusPending   = "pending"
	TransferStatusInTransit = "in-transit"
	TransferStatusCompleted = "completed"
	TransferStatusCancelled = "cancelled"
)

// Utilization tier constants for location occupancy
const (
	UtilizationCritical = "red"    // >= 90%
	UtilizationHigh     = "yellow" // >= 70%
	UtilizationNormal   = "green"
)

// Warehouse represents a physical site
type Warehouse struct {
	ID          string    `json:"id"` // slug, e.g. "main-warehouse"
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	CapacityPct int       `json:"capacity_pct"` // headline utilization shown on the card
	Items       int       `json:"items"`
	Staff       int       `json:"staff"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Coordinates pinpoints a location within the warehouse floor plan
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Location is a rack/shelf/bin slot within a warehouse
type Location struct {
	ID          uuid.UUID    `json:"id"`
	WarehouseID string       `json:"warehouse_id"`
	Rack        string       `json:"rack"`
	Shelf       string       `json:"shelf"`
	Bin         string       `json:"bin"`
	Capacity    int          `json:"capacity"`
	Occupied    int          `json:"occupied"`
	Products    []string     `json:"products"` // SKUs stored at this slot
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Code returns the rack-shelf-bin code, e.g. "A1-S1-B1"
func (l Location) Code() string {
	return fmt.Sprintf("%s-%s-%s", l.Rack, l.Shelf, l.Bin)
}

// UtilizationTier classifies occupancy into the three-tier color scheme
func (l Location) UtilizationTier() string {
	if l.Capacity <= 0 {
		return UtilizationNormal
	}
	pct := float64(l.Occupied) / float64(l.Capacity) * 100
	switch {
	case pct >= 90:
		return UtilizationCritical
	case pct >= 70:
		return UtilizationHigh
	default:
		return UtilizationNormal
	}
}

// StockTransfer is a request to move quantity between warehouses. Transfers
// track their own lifecycle and do not mutate StockItem quantities.
type StockTransfer struct {
	ID            uuid.UUID  `json:"id"`
	ProductSKU    string     `json:"product_sku"`
	ProductName   string     `json:"product_name"`
	Quantity      int        `json:"quantity"`
	FromWarehouse string     `json:"from_warehouse"`
	ToWarehouse   string     `json:"to_warehouse"`
	FromLocation  string     `json:"from_location"`
	ToLocation    string     `json:"to_location"`
	Status        string     `json:"status"`
	RequestedBy   string     `json:"requested_by"`
	RequestedAt   time.Time  `json:"requested_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// ValidTransferStatus reports whether s is a known transfer state
func ValidTransferStatus(s string) bool {
	switch s {
	case TransferStatusPending, TransferStatusInTransit, TransferStatusCompleted, TransferStatusCancelled:
		return true
	}
	return false
}
