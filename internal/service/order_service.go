package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"inventorypro/internal/model"
	"inventorypro/internal/store"
	ws "inventorypro/internal/websocket"
	"inventorypro/pkg/pagination"
)

// DTOs
type CreateFulfillmentRequest struct {
	Customer     string     `json:"customer" binding:"required"`
	Items        int        `json:"items" binding:"required,gt=0"`
	Total        float64    `json:"total" binding:"required,min=0"`
	Priority     string     `json:"priority" binding:"required,oneof=Low Medium High"`
	Warehouse    string     `json:"warehouse" binding:"required"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

type SetFulfillmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
}

type SetFulfillmentPriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=Low Medium High"`
}

// OrderService drives the warehouse-floor fulfillment board, a flat list of
// outbound orders separate from the sales module's full records.
type OrderService interface {
	List(ctx context.Context, page, limit int, search, status, priority string) ([]model.FulfillmentOrder, int, error)
	Get(ctx context.Context, id string) (model.FulfillmentOrder, error)
	Create(ctx context.Context, userID, userName string, req CreateFulfillmentRequest) (model.FulfillmentOrder, error)
	SetStatus(ctx context.Context, userID, userName, id string, req SetFulfillmentStatusRequest) (model.FulfillmentOrder, error)
	SetPriority(ctx context.Context, userID, userName, id string, req SetFulfillmentPriorityRequest) (model.FulfillmentOrder, error)
}

type orderService struct {
	stores *store.Stores
	audit  AuditService
	hub    *ws.Hub
}

func NewOrderService(stores *store.Stores, audit AuditService, hub *ws.Hub) OrderService {
	return &orderService{stores: stores, audit: audit, hub: hub}
}

func (s *orderService) List(ctx context.Context, page, limit int, search, status, priority string) ([]model.FulfillmentOrder, int, error) {
	search = strings.ToLower(strings.TrimSpace(search))
	matched := s.stores.Fulfillment.Filter(func(o model.FulfillmentOrder) bool {
		if status != "" && o.Status != status {
			return false
		}
		if priority != "" && o.Priority != priority {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(o.OrderNumber), search) ||
			strings.Contains(strings.ToLower(o.Customer), search)
	})

	paged, total := pagination.Window(matched, pagination.Of(page, limit))
	return paged, total, nil
}

func (s *orderService) Get(ctx context.Context, id string) (model.FulfillmentOrder, error) {
	o, err := s.stores.Fulfillment.Get(id)
	if err != nil {
		return model.FulfillmentOrder{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return o, nil
}

func (s *orderService) Create(ctx context.Context, userID, userName string, req CreateFulfillmentRequest) (model.FulfillmentOrder, error) {
	now := time.Now()
	o := model.FulfillmentOrder{
		ID:           uuid.New(),
		OrderNumber:  store.NextDocumentNumber("ORD", now, s.stores.Fulfillment.Len()),
		Customer:     req.Customer,
		Items:        req.Items,
		Total:        decimal.NewFromFloat(req.Total),
		Status:       model.FulfillmentPending,
		Priority:     req.Priority,
		OrderDate:    now,
		DeliveryDate: req.DeliveryDate,
		Warehouse:    req.Warehouse,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.stores.Fulfillment.Insert(o); err != nil {
		return model.FulfillmentOrder{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.audit.Record(ctx, userID, userName, model.ActionCreateSO, o.ID.String(), o.OrderNumber, req)
	return o, nil
}

func (s *orderService) SetStatus(ctx context.Context, userID, userName, id string, req SetFulfillmentStatusRequest) (model.FulfillmentOrder, error) {
	current, err := s.stores.Fulfillment.Get(id)
	if err != nil {
		return model.FulfillmentOrder{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if current.Status == model.FulfillmentDelivered || current.Status == model.FulfillmentCancelled {
		return model.FulfillmentOrder{}, fmt.Errorf("order already %s: %w", current.Status, ErrInvalidState)
	}

	updated, err := s.stores.Fulfillment.Update(id, func(o model.FulfillmentOrder) model.FulfillmentOrder {
		o.Status = req.Status
		o.UpdatedAt = time.Now()
		return o
	})
	if err != nil {
		return model.FulfillmentOrder{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionUpdateSO, updated.ID.String(), updated.OrderNumber, req)
	s.hub.Publish(ws.EventOrderStatus, map[string]interface{}{
		"kind":   "fulfillment",
		"id":     updated.ID.String(),
		"number": updated.OrderNumber,
		"status": updated.Status,
	})
	return updated, nil
}

func (s *orderService) SetPriority(ctx context.Context, userID, userName, id string, req SetFulfillmentPriorityRequest) (model.FulfillmentOrder, error) {
	updated, err := s.stores.Fulfillment.Update(id, func(o model.FulfillmentOrder) model.FulfillmentOrder {
		o.Priority = req.Priority
		o.UpdatedAt = time.Now()
		return o
	})
	if err != nil {
		return model.FulfillmentOrder{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionUpdateSO, updated.ID.String(), updated.OrderNumber, req)
	return updated, nil
}
