package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus enum constants
const (
	POStatusDraft     = "Draft"
	POStatusPending   = "Pending"
	POStatusApproved  = "Approved"
	POStatusReceived  = "Received"
	POStatusCancelled = "Cancelled"
)

// LineItem is the shared order line shape for purchase and sales orders.
// Total is always recomputed as Quantity × UnitPrice, never set directly.
type LineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Recalculate sets Total from Quantity and UnitPrice
func (li *LineItem) Recalculate() {
	li.Total = li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// SumLineTotals returns the sum of line totals for an order's TotalAmount
func SumLineTotals(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Total)
	}
	return total
}

// PurchaseOrder represents an order placed with a vendor
type PurchaseOrder struct {
	ID               uuid.UUID       `json:"id"`
	PONumber         string          `json:"po_number"`
	VendorID         string          `json:"vendor_id"`
	VendorName       string          `json:"vendor_name"`
	Status           string          `json:"status"`
	TotalAmount      decimal.Decimal `json:"total_amount"` // derived: sum of item totals at save time
	OrderDate        time.Time       `json:"order_date"`
	ExpectedDelivery time.Time       `json:"expected_delivery"`
	Items            []LineItem      `json:"items"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// GRNItem captures the received quantity per ordered line
type GRNItem struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	OrderedQuantity  int             `json:"ordered_quantity"`
	ReceivedQuantity int             `json:"received_quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	IsReceived       bool            `json:"is_received"`
}

// GoodsReceivedNote confirms receipt against a purchase order. Receipt marks
// the PO Received but does not feed back into stock quantities; stock
// changes go through the audited adjustment path.
type GoodsReceivedNote struct {
	ID           uuid.UUID `json:"id"`
	GRNNumber    string    `json:"grn_number"`
	POID         uuid.UUID `json:"po_id"`
	PONumber     string    `json:"po_number"`
	VendorName   string    `json:"vendor_name"`
	ReceivedDate time.Time `json:"received_date"`
	ReceivedBy   string    `json:"received_by"`
	Notes        string    `json:"notes"`
	Items        []GRNItem `json:"items"`
	CreatedAt    time.Time `json:"created_at"`
}
