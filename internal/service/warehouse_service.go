package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"inventorypro/internal/model"
	"inventorypro/internal/store"
	ws "inventorypro/internal/websocket"
	"inventorypro/pkg/pagination"
)

// DTOs
type CreateWarehouseRequest struct {
	ID      string `json:"id" binding:"required"` // slug, e.g. "main-warehouse"
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Staff   int    `json:"staff" binding:"min=0"`
}

type CreateLocationRequest struct {
	Rack        string             `json:"rack" binding:"required"`
	Shelf       string             `json:"shelf" binding:"required"`
	Bin         string             `json:"bin" binding:"required"`
	Capacity    int                `json:"capacity" binding:"required,gt=0"`
	Occupied    int                `json:"occupied" binding:"min=0"`
	Products    []string           `json:"products"`
	Coordinates *model.Coordinates `json:"coordinates"`
}

type CreateTransferRequest struct {
	ProductSKU    string `json:"product_sku" binding:"required"`
	ProductName   string `json:"product_name" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,gt=0"`
	FromWarehouse string `json:"from_warehouse" binding:"required"`
	ToWarehouse   string `json:"to_warehouse" binding:"required"`
	FromLocation  string `json:"from_location"`
	ToLocation    string `json:"to_location"`
	Notes         string `json:"notes"`
}

type SetTransferStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in-transit completed cancelled"`
}

// LocationResponse decorates a location with its derived code and tier
type LocationResponse struct {
	model.Location
	Code        string `json:"code"`
	Utilization string `json:"utilization"`
}

type WarehouseService interface {
	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
	GetWarehouse(ctx context.Context, id string) (model.Warehouse, error)
	CreateWarehouse(ctx context.Context, userID, userName string, req CreateWarehouseRequest) (model.Warehouse, error)
	DeleteWarehouse(ctx context.Context, userID, userName, id string) error

	ListLocations(ctx context.Context, warehouseID string) ([]LocationResponse, error)
	CreateLocation(ctx context.Context, userID, userName, warehouseID string, req CreateLocationRequest) (LocationResponse, error)

	ListTransfers(ctx context.Context, page, limit int, status string) ([]model.StockTransfer, int, error)
	CreateTransfer(ctx context.Context, userID, userName string, req CreateTransferRequest) (model.StockTransfer, error)
	SetTransferStatus(ctx context.Context, userID, userName, id string, req SetTransferStatusRequest) (model.StockTransfer, error)
}

type warehouseService struct {
	stores *store.Stores
	audit  AuditService
	hub    *ws.Hub
}

func NewWarehouseService(stores *store.Stores, audit AuditService, hub *ws.Hub) WarehouseService {
	return &warehouseService{stores: stores, audit: audit, hub: hub}
}

func (s *warehouseService) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	return s.stores.Warehouses.List(), nil
}

func (s *warehouseService) GetWarehouse(ctx context.Context, id string) (model.Warehouse, error) {
	w, err := s.stores.Warehouses.Get(id)
	if err != nil {
		return model.Warehouse{}, fmt.Errorf("warehouse %s: %w", id, ErrNotFound)
	}
	return w, nil
}

func (s *warehouseService) CreateWarehouse(ctx context.Context, userID, userName string, req CreateWarehouseRequest) (model.Warehouse, error) {
	id := strings.ToLower(strings.TrimSpace(req.ID))
	now := time.Now()
	w := model.Warehouse{
		ID:        id,
		Name:      req.Name,
		Address:   req.Address,
		Staff:     req.Staff,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.stores.Warehouses.Insert(w); err != nil {
		return model.Warehouse{}, fmt.Errorf("warehouse %q already exists: %w", id, ErrConflict)
	}

	s.audit.Record(ctx, userID, userName, model.ActionCreateWarehouse, w.ID, w.Name, req)
	return w, nil
}

// DeleteWarehouse removes a site. Locations under it are removed too; stock
// items keep their warehouse_id and simply dangle, matching the loose coupling
// everywhere else in the store layer.
func (s *warehouseService) DeleteWarehouse(ctx context.Context, userID, userName, id string) error {
	w, err := s.stores.Warehouses.Get(id)
	if err != nil {
		return fmt.Errorf("warehouse %s: %w", id, ErrNotFound)
	}
	if err := s.stores.Warehouses.Delete(id); err != nil {
		return fmt.Errorf("warehouse %s: %w", id, ErrNotFound)
	}
	for _, loc := range s.stores.Locations.Filter(func(l model.Location) bool { return l.WarehouseID == id }) {
		_ = s.stores.Locations.Delete(loc.ID.String())
	}

	s.audit.Record(ctx, userID, userName, model.ActionDeleteWarehouse, id, w.Name, map[string]interface{}{"deleted": true})
	return nil
}

func (s *warehouseService) decorateLocation(l model.Location) LocationResponse {
	return LocationResponse{
		Location:    l,
		Code:        l.Code(),
		Utilization: l.UtilizationTier(),
	}
}

func (s *warehouseService) ListLocations(ctx context.Context, warehouseID string) ([]LocationResponse, error) {
	if _, err := s.stores.Warehouses.Get(warehouseID); err != nil {
		return nil, fmt.Errorf("warehouse %s: %w", warehouseID, ErrNotFound)
	}
	matched := s.stores.Locations.Filter(func(l model.Location) bool { return l.WarehouseID == warehouseID })
	out := make([]LocationResponse, 0, len(matched))
	for _, l := range matched {
		out = append(out, s.decorateLocation(l))
	}
	return out, nil
}

func (s *warehouseService) CreateLocation(ctx context.Context, userID, userName, warehouseID string, req CreateLocationRequest) (LocationResponse, error) {
	if _, err := s.stores.Warehouses.Get(warehouseID); err != nil {
		return LocationResponse{}, fmt.Errorf("warehouse %s: %w", warehouseID, ErrNotFound)
	}
	if req.Occupied > req.Capacity {
		return LocationResponse{}, fmt.Errorf("occupied exceeds capacity: %w", ErrValidation)
	}

	now := time.Now()
	loc := model.Location{
		ID:          uuid.New(),
		WarehouseID: warehouseID,
		Rack:        req.Rack,
		Shelf:       req.Shelf,
		Bin:         req.Bin,
		Capacity:    req.Capacity,
		Occupied:    req.Occupied,
		Products:    req.Products,
		Coordinates: req.Coordinates,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if loc.Products == nil {
		loc.Products = []string{}
	}
	if err := s.stores.Locations.Insert(loc); err != nil {
		return LocationResponse{}, fmt.Errorf("failed to create location: %w", err)
	}

	s.audit.Record(ctx, userID, userName, model.ActionCreateLocation, loc.ID.String(), loc.Code(), req)
	return s.decorateLocation(loc), nil
}

func (s *warehouseService) ListTransfers(ctx context.Context, page, limit int, status string) ([]model.StockTransfer, int, error) {
	matched := s.stores.Transfers.Filter(func(t model.StockTransfer) bool {
		return status == "" || t.Status == status
	})

	paged, total := pagination.Window(matched, pagination.Of(page, limit))
	return paged, total, nil
}

func (s *warehouseService) CreateTransfer(ctx context.Context, userID, userName string, req CreateTransferRequest) (model.StockTransfer, error) {
	if req.FromWarehouse == req.ToWarehouse {
		return model.StockTransfer{}, fmt.Errorf("source and destination warehouses must differ: %w", ErrValidation)
	}
	if _, err := s.stores.Warehouses.Get(req.FromWarehouse); err != nil {
		return model.StockTransfer{}, fmt.Errorf("warehouse %s: %w", req.FromWarehouse, ErrNotFound)
	}
	if _, err := s.stores.Warehouses.Get(req.ToWarehouse); err != nil {
		return model.StockTransfer{}, fmt.Errorf("warehouse %s: %w", req.ToWarehouse, ErrNotFound)
	}

	t := model.StockTransfer{
		ID:            uuid.New(),
		ProductSKU:    req.ProductSKU,
		ProductName:   req.ProductName,
		Quantity:      req.Quantity,
		FromWarehouse: req.FromWarehouse,
		ToWarehouse:   req.ToWarehouse,
		FromLocation:  req.FromLocation,
		ToLocation:    req.ToLocation,
		Status:        model.TransferStatusPending,
		RequestedBy:   userName,
		RequestedAt:   time.Now(),
		Notes:         req.Notes,
	}
	if err := s.stores.Transfers.Insert(t); err != nil {
		return model.StockTransfer{}, fmt.Errorf("failed to create transfer: %w", err)
	}

	s.audit.Record(ctx, userID, userName, model.ActionCreateTransfer, t.ID.String(), t.ProductSKU, req)
	return t, nil
}

// SetTransferStatus advances a transfer through its lifecycle. Completed and
// cancelled are terminal.
func (s *warehouseService) SetTransferStatus(ctx context.Context, userID, userName, id string, req SetTransferStatusRequest) (model.StockTransfer, error) {
	current, err := s.stores.Transfers.Get(id)
	if err != nil {
		return model.StockTransfer{}, fmt.Errorf("transfer %s: %w", id, ErrNotFound)
	}
	if current.Status == model.TransferStatusCompleted || current.Status == model.TransferStatusCancelled {
		return model.StockTransfer{}, fmt.Errorf("transfer already %s: %w", current.Status, ErrInvalidState)
	}

	updated, err := s.stores.Transfers.Update(id, func(t model.StockTransfer) model.StockTransfer {
		t.Status = req.Status
		if req.Status == model.TransferStatusCompleted {
			now := time.Now()
			t.CompletedAt = &now
		}
		return t
	})
	if err != nil {
		return model.StockTransfer{}, fmt.Errorf("transfer %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionUpdateTransfer, updated.ID.String(), updated.ProductSKU, req)
	s.hub.Publish(ws.EventTransfer, map[string]interface{}{
		"transfer_id": updated.ID.String(),
		"sku":         updated.ProductSKU,
		"status":      updated.Status,
	})
	return updated, nil
}
