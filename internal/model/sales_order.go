package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesOrderStatus enum constants
const (
	SOStatusDraft      = "Draft"
	SOStatusConfirmed  = "Confirmed"
	SOStatusReserved   = "Reserved"
	SOStatusDispatched = "Dispatched"
	SOStatusDelivered  = "Delivered"
	SOStatusCancelled  = "Cancelled"
)

// InvoiceTaxRate is the flat rate applied when projecting an invoice from a
// sales order.
var InvoiceTaxRate = decimal.NewFromFloat(0.10)

// SalesLine is a sales order line; Reserved is flipped in bulk when the order
// transitions to Reserved.
type SalesLine struct {
	LineItem
	Reserved bool `json:"reserved"`
}

// SalesOrder represents a customer order
type SalesOrder struct {
	ID           uuid.UUID       `json:"id"`
	OrderNumber  string          `json:"order_number"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"` // derived: sum of line totals at save time
	Currency     string          `json:"currency"`
	OrderDate    time.Time       `json:"order_date"`
	DeliveryDate time.Time       `json:"delivery_date"`
	Items        []SalesLine     `json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SumSalesLines returns the order total from its lines
func SumSalesLines(items []SalesLine) decimal.Decimal {
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Total)
	}
	return total
}

// Invoice is a read-only projection of a sales order; generating one causes
// no state change.
type Invoice struct {
	InvoiceNumber string          `json:"invoice_number"`
	OrderNumber   string          `json:"order_number"`
	CustomerName  string          `json:"customer_name"`
	Currency      string          `json:"currency"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	DueDate       time.Time       `json:"due_date"`
	Items         []LineItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"tax_amount"` // flat 10% of subtotal
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// ProjectInvoice builds the invoice view of a sales order. Due date is 30
// days out, invoice numbers reuse the order sequence (SO-2024-001 → INV-2024-001).
func ProjectInvoice(so SalesOrder, now time.Time) Invoice {
	items := make([]LineItem, 0, len(so.Items))
	for _, li := range so.Items {
		items = append(items, li.LineItem)
	}
	tax := so.TotalAmount.Mul(InvoiceTaxRate)
	return Invoice{
		InvoiceNumber: "INV-" + strings.TrimPrefix(so.OrderNumber, "SO-"),
		OrderNumber:   so.OrderNumber,
		CustomerName:  so.CustomerName,
		Currency:      so.Currency,
		InvoiceDate:   now,
		DueDate:       now.AddDate(0, 0, 30),
		Items:         items,
		Subtotal:      so.TotalAmount,
		TaxAmount:     tax,
		GrandTotal:    so.TotalAmount.Add(tax),
	}
}
