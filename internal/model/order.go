package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FulfillmentStatus enum constants for the order board
const (
	FulfillmentPending    = "Pending"
	FulfillmentProcessing = "Processing"
	FulfillmentShipped    = "Shipped"
	FulfillmentDelivered  = "Delivered"
	FulfillmentCancelled  = "Cancelled"
)

// Priority enum constants
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// FulfillmentOrder is the warehouse-floor view of an outbound order: item
// count and total only, no line detail. It is a separate board from the sales
// module's full SalesOrder records.
type FulfillmentOrder struct {
	ID           uuid.UUID       `json:"id"`
	OrderNumber  string          `json:"order_number"`
	Customer     string          `json:"customer"`
	Items        int             `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	Priority     string          `json:"priority"`
	OrderDate    time.Time       `json:"order_date"`
	DeliveryDate *time.Time      `json:"delivery_date,omitempty"`
	Warehouse    string          `json:"warehouse"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ValidFulfillmentStatus reports whether s is a known board state
func ValidFulfillmentStatus(s string) bool {
	switch s {
	case FulfillmentPending, FulfillmentProcessing, FulfillmentShipped,
		FulfillmentDelivered, FulfillmentCancelled:
		return true
	}
	return false
}

// ValidPriority reports whether p is a known priority
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
