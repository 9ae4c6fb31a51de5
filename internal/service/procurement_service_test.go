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

func seededPO(t *testing.T, s *store.Stores) model.PurchaseOrder {
	t.Helper()
	pos := s.PurchaseOrders.List()
	require.Len(t, pos, 1)
	return pos[0]
}

func TestApprovePOChangesOnlyStatus(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewProcurementService(s, audit, hub)
	po := seededPO(t, s)
	require.Equal(t, model.POStatusPending, po.Status)

	got, err := svc.ApprovePO(context.Background(), "u1", "Tester", po.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.POStatusApproved, got.Status)

	// Everything but status and the update timestamp is untouched
	assert.Equal(t, po.PONumber, got.PONumber)
	assert.Equal(t, po.VendorID, got.VendorID)
	assert.True(t, got.TotalAmount.Equal(po.TotalAmount))
	assert.Equal(t, len(po.Items), len(got.Items))
	assert.Equal(t, po.OrderDate, got.OrderDate)
	assert.Equal(t, po.ExpectedDelivery, got.ExpectedDelivery)
}

func TestApprovePORequiresPending(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewProcurementService(s, audit, hub)
	po := seededPO(t, s)

	_, err := svc.ApprovePO(context.Background(), "u1", "Tester", po.ID.String())
	require.NoError(t, err)

	_, err = svc.ApprovePO(context.Background(), "u1", "Tester", po.ID.String())
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestCreatePODerivesTotal(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewProcurementService(s, audit, hub)
	vendor := s.Vendors.List()[0]

	got, err := svc.CreatePO(context.Background(), "u1", "Tester", service.CreatePORequest{
		VendorID:         vendor.ID.String(),
		Status:           model.POStatusPending,
		ExpectedDelivery: time.Now().AddDate(0, 0, 14),
		Items: []service.OrderLineRequest{
			{ProductID: "p1", ProductName: "Office Paper A4", Quantity: 50, UnitPrice: 12.99},
			{ProductID: "p2", ProductName: "USB Cable Type-C", Quantity: 25, UnitPrice: 8.99},
		},
	})
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromFloat(874.25)), "got %s", got.TotalAmount)
	assert.Equal(t, vendor.Name, got.VendorName)
	assert.Equal(t, model.POStatusPending, got.Status)
	for _, li := range got.Items {
		assert.True(t, li.Total.Equal(li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))))
	}
}

func TestCreatePOUnknownVendor(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewProcurementService(s, audit, hub)

	_, err := svc.CreatePO(context.Background(), "u1", "Tester", service.CreatePORequest{
		VendorID:         "00000000-0000-0000-0000-000000000000",
		ExpectedDelivery: time.Now(),
		Items:            []service.OrderLineRequest{{ProductID: "p1", ProductName: "x", Quantity: 1, UnitPrice: 1}},
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestReceiveGoodsLeavesStockAlone(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewProcurementService(s, audit, hub)
	po := seededPO(t, s)

	_, err := svc.ApprovePO(context.Background(), "u1", "Tester", po.ID.String())
	require.NoError(t, err)

	paperBefore := stockBySKU(t, s, "OFF-001")

	items := make([]service.GRNItemRequest, 0, len(po.Items))
	for _, li := range po.Items {
		items = append(items, service.GRNItemRequest{ProductID: li.ProductID, ReceivedQuantity: li.Quantity})
	}
	grn, err := svc.ReceiveGoods(context.Background(), "u1", "Tester", po.ID.String(), service.ReceiveGoodsRequest{
		Notes: "All cartons intact",
		Items: items,
	})
	require.NoError(t, err)
	assert.Equal(t, po.PONumber, grn.PONumber)
	assert.Equal(t, "Tester", grn.ReceivedBy)
	require.Len(t, grn.Items, len(po.Items))
	for _, gi := range grn.Items {
		assert.True(t, gi.IsReceived)
	}

	updated, err := svc.GetPO(context.Background(), po.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.POStatusReceived, updated.Status)

	// Receipt never adjusts inventory; that stays an explicit operation
	paperAfter := stockBySKU(t, s, "OFF-001")
	assert.Equal(t, paperBefore.CurrentStock, paperAfter.CurrentStock)
}

func TestReceiveGoodsRequiresApproved(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewProcurementService(s, audit, hub)
	po := seededPO(t, s)

	_, err := svc.ReceiveGoods(context.Background(), "u1", "Tester", po.ID.String(), service.ReceiveGoodsRequest{
		Items: []service.GRNItemRequest{{ProductID: po.Items[0].ProductID, ReceivedQuantity: 1}},
	})
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestCancelPOTerminalStates(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewProcurementService(s, audit, hub)
	po := seededPO(t, s)

	got, err := svc.CancelPO(context.Background(), "u1", "Tester", po.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.POStatusCancelled, got.Status)

	_, err = svc.CancelPO(context.Background(), "u1", "Tester", po.ID.String())
	assert.ErrorIs(t, err, service.ErrInvalidState)
}
