package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItemRecalculate(t *testing.T) {
	li := LineItem{Quantity: 50, UnitPrice: decimal.NewFromFloat(12.99)}
	li.Recalculate()
	assert.True(t, li.Total.Equal(decimal.NewFromFloat(649.50)), "got %s", li.Total)

	// A stale total is always overwritten
	li.Total = decimal.NewFromInt(999)
	li.Recalculate()
	assert.True(t, li.Total.Equal(decimal.NewFromFloat(649.50)))
}

func TestSumLineTotals(t *testing.T) {
	paper := LineItem{Quantity: 50, UnitPrice: decimal.NewFromFloat(12.99)}
	paper.Recalculate()
	cable := LineItem{Quantity: 25, UnitPrice: decimal.NewFromFloat(8.99)}
	cable.Recalculate()

	total := SumLineTotals([]LineItem{paper, cable})
	assert.True(t, total.Equal(decimal.NewFromFloat(874.25)), "got %s", total)
}

func TestSumSalesLines(t *testing.T) {
	paper := SalesLine{LineItem: LineItem{Quantity: 50, UnitPrice: decimal.NewFromFloat(12.99)}}
	paper.Recalculate()
	cable := SalesLine{LineItem: LineItem{Quantity: 25, UnitPrice: decimal.NewFromFloat(8.99)}}
	cable.Recalculate()

	total := SumSalesLines([]SalesLine{paper, cable})
	assert.True(t, total.Equal(decimal.NewFromFloat(874.25)), "got %s", total)
}

func TestProjectInvoice(t *testing.T) {
	line := SalesLine{LineItem: LineItem{ProductName: "Office Paper A4", Quantity: 50, UnitPrice: decimal.NewFromFloat(12.99)}}
	line.Recalculate()

	so := SalesOrder{
		OrderNumber:  "SO-2024-001",
		CustomerName: "Tech Solutions Inc",
		Currency:     "USD",
		Status:       SOStatusConfirmed,
		TotalAmount:  SumSalesLines([]SalesLine{line}),
		Items:        []SalesLine{line},
	}

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	inv := ProjectInvoice(so, now)

	assert.Equal(t, "INV-2024-001", inv.InvoiceNumber)
	assert.Equal(t, "SO-2024-001", inv.OrderNumber)
	assert.Equal(t, now, inv.InvoiceDate)
	assert.Equal(t, now.AddDate(0, 0, 30), inv.DueDate)
	require.Len(t, inv.Items, 1)

	subtotal := decimal.NewFromFloat(649.50)
	assert.True(t, inv.Subtotal.Equal(subtotal), "got %s", inv.Subtotal)
	assert.True(t, inv.TaxAmount.Equal(subtotal.Mul(decimal.NewFromFloat(0.10))), "got %s", inv.TaxAmount)
	assert.True(t, inv.GrandTotal.Equal(subtotal.Add(inv.TaxAmount)), "got %s", inv.GrandTotal)
}
