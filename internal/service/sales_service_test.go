package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventorypro/internal/model"
	"inventorypro/internal/service"
	"inventorypro/internal/store"
)

func seededSO(t *testing.T, s *store.Stores) model.SalesOrder {
	t.Helper()
	sos := s.SalesOrders.List()
	require.Len(t, sos, 1)
	return sos[0]
}

func TestReserveSOFlagsEveryLine(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewSalesService(s, audit, hub)
	so := seededSO(t, s)
	require.Equal(t, model.SOStatusConfirmed, so.Status)
	for _, li := range so.Items {
		require.False(t, li.Reserved)
	}

	got, err := svc.ReserveSO(context.Background(), "u1", "Tester", so.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.SOStatusReserved, got.Status)
	for _, li := range got.Items {
		assert.True(t, li.Reserved)
	}

	// Reservation is bookkeeping only; quantities and totals stand still
	assert.True(t, got.TotalAmount.Equal(so.TotalAmount))
	paper := stockBySKU(t, s, "OFF-001")
	assert.Equal(t, 150, paper.CurrentStock)
}

func TestReserveSORequiresConfirmed(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewSalesService(s, audit, hub)
	so := seededSO(t, s)

	_, err := svc.ReserveSO(context.Background(), "u1", "Tester", so.ID.String())
	require.NoError(t, err)

	_, err = svc.ReserveSO(context.Background(), "u1", "Tester", so.ID.String())
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestSalesOrderLifecycle(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewSalesService(s, audit, hub)
	so := seededSO(t, s)
	id := so.ID.String()
	ctx := context.Background()

	_, err := svc.ReserveSO(ctx, "u1", "Tester", id)
	require.NoError(t, err)

	dispatched, err := svc.DispatchSO(ctx, "u1", "Tester", id)
	require.NoError(t, err)
	assert.Equal(t, model.SOStatusDispatched, dispatched.Status)

	delivered, err := svc.DeliverSO(ctx, "u1", "Tester", id)
	require.NoError(t, err)
	assert.Equal(t, model.SOStatusDelivered, delivered.Status)

	// Cancellation is allowed from any state, Delivered included
	cancelled, err := svc.CancelSO(ctx, "u1", "Tester", id)
	require.NoError(t, err)
	assert.Equal(t, model.SOStatusCancelled, cancelled.Status)

	// Only an already-Cancelled order refuses a second cancel
	_, err = svc.CancelSO(ctx, "u1", "Tester", id)
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestCreateSODerivesTotal(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewSalesService(s, audit, hub)
	customer := s.Customers.List()[0]

	got, err := svc.CreateSO(context.Background(), "u1", "Tester", service.CreateSORequest{
		CustomerID:   customer.ID.String(),
		Status:       model.SOStatusConfirmed,
		DeliveryDate: time.Now().AddDate(0, 0, 5),
		Items: []service.OrderLineRequest{
			{ProductID: "p1", ProductName: "Office Paper A4", Quantity: 50, UnitPrice: 12.99},
			{ProductID: "p2", ProductName: "USB Cable Type-C", Quantity: 25, UnitPrice: 8.99},
		},
	})
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromFloat(874.25)), "got %s", got.TotalAmount)
	assert.Equal(t, customer.Name, got.CustomerName)
	// Currency falls back to the system setting
	assert.Equal(t, "USD", got.Currency)
	for _, li := range got.Items {
		assert.False(t, li.Reserved)
	}
}

func TestInvoiceProjectionIsStateless(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewSalesService(s, audit, hub)
	so := seededSO(t, s)

	inv, err := svc.Invoice(context.Background(), so.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-001", inv.InvoiceNumber)
	assert.True(t, inv.TaxAmount.Equal(so.TotalAmount.Mul(decimal.NewFromFloat(0.10))))
	assert.True(t, inv.GrandTotal.Equal(so.TotalAmount.Add(inv.TaxAmount)))

	// Projecting twice changes nothing on the order
	after, err := svc.GetSO(context.Background(), so.ID.String())
	require.NoError(t, err)
	assert.Equal(t, so.Status, after.Status)
	assert.Equal(t, so.UpdatedAt, after.UpdatedAt)
}
