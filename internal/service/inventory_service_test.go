package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventorypro/internal/model"
	"inventorypro/internal/service"
	"inventorypro/internal/store"
	"inventorypro/internal/websocket"
)

// newFixture builds seeded stores with a running hub for service tests
func newFixture(t *testing.T) (*store.Stores, service.AuditService, *websocket.Hub) {
	t.Helper()
	s := store.New()
	require.NoError(t, store.Seed(s, time.Now()))
	hub := websocket.NewHub()
	go hub.Run()
	return s, service.NewAuditService(s), hub
}

func stockBySKU(t *testing.T, s *store.Stores, sku string) model.StockItem {
	t.Helper()
	item, err := s.Stock.Find(func(it model.StockItem) bool { return it.SKU == sku })
	require.NoError(t, err)
	return item
}

func TestAdjustStockSet(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewInventoryService(s, audit, hub)
	mouse := stockBySKU(t, s, "ELE-023")

	got, err := svc.AdjustStock(context.Background(), "u1", "Tester", mouse.ID.String(), service.AdjustStockRequest{
		AdjustmentType: model.AdjustmentSet,
		Quantity:       75,
		Reason:         "Cycle count",
	})
	require.NoError(t, err)
	assert.Equal(t, 75, got.CurrentStock)
	assert.Equal(t, model.StockStatusNormal, got.Status)
	assert.True(t, got.LastUpdated.After(mouse.LastUpdated) || got.LastUpdated.Equal(mouse.LastUpdated))

	// Min, max and batches are untouched by an adjustment
	assert.Equal(t, mouse.MinStock, got.MinStock)
	assert.Equal(t, mouse.MaxStock, got.MaxStock)
	assert.Equal(t, len(mouse.Batches), len(got.Batches))
}

func TestAdjustStockSetToZero(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewInventoryService(s, audit, hub)
	mouse := stockBySKU(t, s, "ELE-023")

	// A zero quantity must survive request binding
	var req service.AdjustStockRequest
	body := []byte(`{"adjustment_type":"set","quantity":0,"reason":"cycle count"}`)
	require.NoError(t, binding.JSON.BindBody(body, &req))
	assert.Equal(t, 0, req.Quantity)

	got, err := svc.AdjustStock(context.Background(), "u1", "Tester", mouse.ID.String(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentStock)
	assert.Equal(t, model.StockStatusOut, got.Status)
}

func TestAdjustStockRemoveFloorsAtZero(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewInventoryService(s, audit, hub)
	mouse := stockBySKU(t, s, "ELE-023")
	require.Equal(t, 32, mouse.CurrentStock)

	got, err := svc.AdjustStock(context.Background(), "u1", "Tester", mouse.ID.String(), service.AdjustStockRequest{
		AdjustmentType: model.AdjustmentRemove,
		Quantity:       40,
		Reason:         "Damaged goods",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentStock)
	assert.Equal(t, model.StockStatusOut, got.Status)
}

func TestAdjustStockWritesAudit(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewInventoryService(s, audit, hub)
	mouse := stockBySKU(t, s, "ELE-023")

	before := s.Audit.Len()
	_, err := svc.AdjustStock(context.Background(), "u1", "Tester", mouse.ID.String(), service.AdjustStockRequest{
		AdjustmentType: model.AdjustmentAdd,
		Quantity:       10,
		Reason:         "Goods receipt",
		Notes:          "GRN-2024-001",
	})
	require.NoError(t, err)
	require.Equal(t, before+1, s.Audit.Len())

	entries, total, err := audit.List(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Equal(t, before+1, total)
	latest := entries[0]
	assert.Equal(t, model.ActionAdjustStock, latest.Action)
	assert.Equal(t, mouse.ID.String(), latest.EntityID)
	assert.Contains(t, latest.Details, "Goods receipt")
}

func TestAdjustStockUnknownItem(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewInventoryService(s, audit, hub)

	_, err := svc.AdjustStock(context.Background(), "u1", "Tester", "00000000-0000-0000-0000-000000000000", service.AdjustStockRequest{
		AdjustmentType: model.AdjustmentAdd,
		Quantity:       1,
		Reason:         "x",
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateBatchesDoesNotTouchStock(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewInventoryService(s, audit, hub)
	paper := stockBySKU(t, s, "OFF-001")

	got, err := svc.UpdateBatches(context.Background(), "u1", "Tester", paper.ID.String(), service.UpdateBatchesRequest{
		Batches: []service.BatchRequest{
			{BatchNumber: "B010", Quantity: 999, Status: model.BatchStatusGood},
		},
	})
	require.NoError(t, err)
	require.Len(t, got.Batches, 1)
	assert.Equal(t, "B010", got.Batches[0].BatchNumber)

	// Wholesale replacement with no reconciliation against the headline stock
	assert.Equal(t, paper.CurrentStock, got.CurrentStock)
	assert.Equal(t, 999, got.BatchTotal)
}

func TestListStockFilters(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewInventoryService(s, audit, hub)

	low, _, err := svc.ListStock(context.Background(), 1, 20, "", "", model.StockStatusLow)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "ELE-023", low[0].SKU)

	byName, _, err := svc.ListStock(context.Background(), 1, 20, "paper", "", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "OFF-001", byName[0].SKU)

	byWarehouse, _, err := svc.ListStock(context.Background(), 1, 20, "", "main-warehouse", "")
	require.NoError(t, err)
	require.Len(t, byWarehouse, 1)
}

func TestInventoryStats(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewInventoryService(s, audit, hub)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalItems)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 0, stats.OutOfStock)
}
