package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inventorypro/internal/model"
	"inventorypro/internal/store"
	ws "inventorypro/internal/websocket"
	"inventorypro/pkg/pagination"
)

// expiryWindow is how far ahead a batch expiry counts as "expiring soon"
const expiryWindow = 30 * 24 * time.Hour

// DTOs
type AdjustStockRequest struct {
	AdjustmentType string `json:"adjustment_type" binding:"required,oneof=add remove set"`
	Quantity       int    `json:"quantity" binding:"min=0"`
	Reason         string `json:"reason" binding:"required"`
	Notes          string `json:"notes"`
}

type BatchRequest struct {
	BatchNumber string     `json:"batch_number" binding:"required"`
	Quantity    int        `json:"quantity" binding:"min=0"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	Status      string     `json:"status" binding:"required,oneof=Good Expired Damaged Lost"`
}

type UpdateBatchesRequest struct {
	Batches []BatchRequest `json:"batches" binding:"required,dive"`
}

// StockItemResponse decorates the stored record with its derived fields
type StockItemResponse struct {
	model.StockItem
	Status       string `json:"status"`
	BatchTotal   int    `json:"batch_total"`
	ExpiringSoon bool   `json:"expiring_soon"`
}

type InventoryService interface {
	ListStock(ctx context.Context, page, limit int, search, warehouseID, status string) ([]StockItemResponse, int, error)
	GetStock(ctx context.Context, id string) (StockItemResponse, error)
	AdjustStock(ctx context.Context, userID, userName, id string, req AdjustStockRequest) (StockItemResponse, error)
	UpdateBatches(ctx context.Context, userID, userName, id string, req UpdateBatchesRequest) (StockItemResponse, error)
	LowStock(ctx context.Context) ([]StockItemResponse, error)
	Expiring(ctx context.Context) ([]StockItemResponse, error)
	Stats(ctx context.Context) (model.InventoryStats, error)
}

type inventoryService struct {
	stores *store.Stores
	audit  AuditService
	hub    *ws.Hub
}

func NewInventoryService(stores *store.Stores, audit AuditService, hub *ws.Hub) InventoryService {
	return &inventoryService{stores: stores, audit: audit, hub: hub}
}

func (s *inventoryService) decorate(item model.StockItem) StockItemResponse {
	return StockItemResponse{
		StockItem:    item,
		Status:       item.Status(),
		BatchTotal:   item.BatchQuantityTotal(),
		ExpiringSoon: item.HasExpiringBatch(time.Now().Add(expiryWindow)),
	}
}

func (s *inventoryService) ListStock(ctx context.Context, page, limit int, search, warehouseID, status string) ([]StockItemResponse, int, error) {
	search = strings.ToLower(strings.TrimSpace(search))
	matched := s.stores.Stock.Filter(func(it model.StockItem) bool {
		if warehouseID != "" && it.WarehouseID != warehouseID {
			return false
		}
		if status != "" && it.Status() != status {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(it.ProductName), search) ||
			strings.Contains(strings.ToLower(it.SKU), search)
	})

	paged, total := pagination.Window(matched, pagination.Of(page, limit))
	out := make([]StockItemResponse, 0, len(paged))
	for _, it := range paged {
		out = append(out, s.decorate(it))
	}
	return out, total, nil
}

func (s *inventoryService) GetStock(ctx context.Context, id string) (StockItemResponse, error) {
	it, err := s.stores.Stock.Get(id)
	if err != nil {
		return StockItemResponse{}, fmt.Errorf("stock item %s: %w", id, ErrNotFound)
	}
	return s.decorate(it), nil
}

// AdjustStock applies an add/remove/set adjustment. Only the quantity and
// timestamp change on the record; reason and notes live in the audit trail.
func (s *inventoryService) AdjustStock(ctx context.Context, userID, userName, id string, req AdjustStockRequest) (StockItemResponse, error) {
	updated, err := s.stores.Stock.Update(id, func(it model.StockItem) model.StockItem {
		it.CurrentStock = model.ApplyAdjustment(it.CurrentStock, req.AdjustmentType, req.Quantity)
		it.LastUpdated = time.Now()
		return it
	})
	if err != nil {
		return StockItemResponse{}, fmt.Errorf("stock item %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionAdjustStock, updated.ID.String(), updated.ProductName, map[string]interface{}{
		"adjustment_type": req.AdjustmentType,
		"quantity":        req.Quantity,
		"reason":          req.Reason,
		"notes":           req.Notes,
		"resulting_stock": updated.CurrentStock,
	})

	s.hub.Publish(ws.EventStockAdjusted, map[string]interface{}{
		"stock_item_id": updated.ID.String(),
		"sku":           updated.SKU,
		"current_stock": updated.CurrentStock,
		"status":        updated.Status(),
	})
	if updated.IsLowStock() {
		s.hub.Publish(ws.EventLowStock, map[string]interface{}{
			"stock_item_id": updated.ID.String(),
			"sku":           updated.SKU,
			"current_stock": updated.CurrentStock,
			"min_stock":     updated.MinStock,
		})
	}

	return s.decorate(updated), nil
}

// UpdateBatches replaces the item's batch list wholesale. Batch totals are not
// reconciled against CurrentStock.
func (s *inventoryService) UpdateBatches(ctx context.Context, userID, userName, id string, req UpdateBatchesRequest) (StockItemResponse, error) {
	batches := make([]model.Batch, 0, len(req.Batches))
	for _, b := range req.Batches {
		batches = append(batches, model.Batch{
			BatchNumber: b.BatchNumber,
			Quantity:    b.Quantity,
			ExpiryDate:  b.ExpiryDate,
			Status:      b.Status,
		})
	}

	updated, err := s.stores.Stock.Update(id, func(it model.StockItem) model.StockItem {
		it.Batches = batches
		it.LastUpdated = time.Now()
		return it
	})
	if err != nil {
		return StockItemResponse{}, fmt.Errorf("stock item %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionUpdateBatches, updated.ID.String(), updated.ProductName, req)
	return s.decorate(updated), nil
}

func (s *inventoryService) LowStock(ctx context.Context) ([]StockItemResponse, error) {
	matched := s.stores.Stock.Filter(func(it model.StockItem) bool { return it.IsLowStock() })
	out := make([]StockItemResponse, 0, len(matched))
	for _, it := range matched {
		out = append(out, s.decorate(it))
	}
	return out, nil
}

func (s *inventoryService) Expiring(ctx context.Context) ([]StockItemResponse, error) {
	deadline := time.Now().Add(expiryWindow)
	matched := s.stores.Stock.Filter(func(it model.StockItem) bool { return it.HasExpiringBatch(deadline) })
	out := make([]StockItemResponse, 0, len(matched))
	for _, it := range matched {
		out = append(out, s.decorate(it))
	}
	return out, nil
}

func (s *inventoryService) Stats(ctx context.Context) (model.InventoryStats, error) {
	deadline := time.Now().Add(expiryWindow)
	stats := model.InventoryStats{}
	for _, it := range s.stores.Stock.List() {
		stats.TotalItems++
		switch it.Status() {
		case model.StockStatusOut:
			stats.OutOfStock++
		case model.StockStatusLow:
			stats.LowStock++
		}
		if it.HasExpiringBatch(deadline) {
			stats.ExpiringSoon++
		}
	}
	return stats, nil
}
