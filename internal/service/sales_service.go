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
type CreateSORequest struct {
	CustomerID   string             `json:"customer_id" binding:"required"`
	Status       string             `json:"status" binding:"omitempty,oneof=Draft Confirmed"`
	Currency     string             `json:"currency"`
	DeliveryDate time.Time          `json:"delivery_date" binding:"required"`
	Items        []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateSORequest struct {
	DeliveryDate time.Time          `json:"delivery_date" binding:"required"`
	Items        []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

type SalesService interface {
	ListSOs(ctx context.Context, page, limit int, search, status string) ([]model.SalesOrder, int, error)
	GetSO(ctx context.Context, id string) (model.SalesOrder, error)
	CreateSO(ctx context.Context, userID, userName string, req CreateSORequest) (model.SalesOrder, error)
	UpdateSO(ctx context.Context, userID, userName, id string, req UpdateSORequest) (model.SalesOrder, error)
	ConfirmSO(ctx context.Context, userID, userName, id string) (model.SalesOrder, error)
	ReserveSO(ctx context.Context, userID, userName, id string) (model.SalesOrder, error)
	DispatchSO(ctx context.Context, userID, userName, id string) (model.SalesOrder, error)
	DeliverSO(ctx context.Context, userID, userName, id string) (model.SalesOrder, error)
	CancelSO(ctx context.Context, userID, userName, id string) (model.SalesOrder, error)
	Invoice(ctx context.Context, id string) (model.Invoice, error)
}

type salesService struct {
	stores *store.Stores
	audit  AuditService
	hub    *ws.Hub
}

func NewSalesService(stores *store.Stores, audit AuditService, hub *ws.Hub) SalesService {
	return &salesService{stores: stores, audit: audit, hub: hub}
}

func buildSalesLines(items []OrderLineRequest) []model.SalesLine {
	lines := make([]model.SalesLine, 0, len(items))
	for _, it := range items {
		li := model.LineItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   decimal.NewFromFloat(it.UnitPrice),
		}
		li.Recalculate()
		lines = append(lines, model.SalesLine{LineItem: li})
	}
	return lines
}

func (s *salesService) ListSOs(ctx context.Context, page, limit int, search, status string) ([]model.SalesOrder, int, error) {
	search = strings.ToLower(strings.TrimSpace(search))
	matched := s.stores.SalesOrders.Filter(func(so model.SalesOrder) bool {
		if status != "" && so.Status != status {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(so.OrderNumber), search) ||
			strings.Contains(strings.ToLower(so.CustomerName), search)
	})

	paged, total := pagination.Window(matched, pagination.Of(page, limit))
	return paged, total, nil
}

func (s *salesService) GetSO(ctx context.Context, id string) (model.SalesOrder, error) {
	so, err := s.stores.SalesOrders.Get(id)
	if err != nil {
		return model.SalesOrder{}, fmt.Errorf("sales order %s: %w", id, ErrNotFound)
	}
	return so, nil
}

func (s *salesService) CreateSO(ctx context.Context, userID, userName string, req CreateSORequest) (model.SalesOrder, error) {
	customer, err := s.stores.Customers.Get(req.CustomerID)
	if err != nil {
		return model.SalesOrder{}, fmt.Errorf("customer %s: %w", req.CustomerID, ErrNotFound)
	}

	status := req.Status
	if status == "" {
		status = model.SOStatusDraft
	}
	currency := req.Currency
	if currency == "" {
		currency = s.stores.Settings.Get().System.Currency
	}

	now := time.Now()
	lines := buildSalesLines(req.Items)
	so := model.SalesOrder{
		ID:           uuid.New(),
		OrderNumber:  store.NextDocumentNumber("SO", now, s.stores.SalesOrders.Len()),
		CustomerID:   customer.ID.String(),
		CustomerName: customer.Name,
		Status:       status,
		TotalAmount:  model.SumSalesLines(lines),
		Currency:     currency,
		OrderDate:    now,
		DeliveryDate: req.DeliveryDate,
		Items:        lines,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.stores.SalesOrders.Insert(so); err != nil {
		return model.SalesOrder{}, fmt.Errorf("failed to create sales order: %w", err)
	}

	s.audit.Record(ctx, userID, userName, model.ActionCreateSO, so.ID.String(), so.OrderNumber, req)
	return so, nil
}

func (s *salesService) UpdateSO(ctx context.Context, userID, userName, id string, req UpdateSORequest) (model.SalesOrder, error) {
	current, err := s.stores.SalesOrders.Get(id)
	if err != nil {
		return model.SalesOrder{}, fmt.Errorf("sales order %s: %w", id, ErrNotFound)
	}
	if current.Status != model.SOStatusDraft && current.Status != model.SOStatusConfirmed {
		return model.SalesOrder{}, fmt.Errorf("cannot edit a %s sales order: %w", current.Status, ErrInvalidState)
	}

	lines := buildSalesLines(req.Items)
	updated, err := s.stores.SalesOrders.Update(id, func(so model.SalesOrder) model.SalesOrder {
		so.Items = lines
		so.TotalAmount = model.SumSalesLines(lines)
		so.DeliveryDate = req.DeliveryDate
		so.UpdatedAt = time.Now()
		return so
	})
	if err != nil {
		return model.SalesOrder{}, fmt.Errorf("sales order %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionUpdateSO, updated.ID.String(), updated.OrderNumber, req)
	return updated, nil
}

// transitionSO moves an order between statuses, optionally rewriting lines via
// mutate, then audits and broadcasts the change.
func (s *salesService) transitionSO(ctx context.Context, userID, userName, id, from, to, action string, mutate func(*model.SalesOrder)) (model.SalesOrder, error) {
	current, err := s.stores.SalesOrders.Get(id)
	if err != nil {
		return model.SalesOrder{}, fmt.Errorf("sales order %s: %w", id, ErrNotFound)
	}
	if current.Status != from {
		return model.SalesOrder{}, fmt.Errorf("sales order is %s, expected %s: %w", current.Status, from, ErrInvalidState)
	}

	updated, err := s.stores.SalesOrders.Update(id, func(so model.SalesOrder) model.SalesOrder {
		so.Status = to
		if mutate != nil {
			mutate(&so)
		}
		so.UpdatedAt = time.Now()
		return so
	})
	if err != nil {
		return model.SalesOrder{}, fmt.Errorf("sales order %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, action, updated.ID.String(), updated.OrderNumber, map[string]interface{}{
		"from": from,
		"to":   to,
	})
	s.hub.Publish(ws.EventOrderStatus, map[string]interface{}{
		"kind":   "sales_order",
		"id":     updated.ID.String(),
		"number": updated.OrderNumber,
		"status": updated.Status,
	})
	return updated, nil
}

func (s *salesService) ConfirmSO(ctx context.Context, userID, userName, id string) (model.SalesOrder, error) {
	return s.transitionSO(ctx, userID, userName, id, model.SOStatusDraft, model.SOStatusConfirmed, model.ActionUpdateSO, nil)
}

// ReserveSO marks the order Reserved and flags every line as reserved. No
// stock quantities are decremented; reservation is a bookkeeping state only.
func (s *salesService) ReserveSO(ctx context.Context, userID, userName, id string) (model.SalesOrder, error) {
	return s.transitionSO(ctx, userID, userName, id, model.SOStatusConfirmed, model.SOStatusReserved, model.ActionReserveStock, func(so *model.SalesOrder) {
		lines := make([]model.SalesLine, len(so.Items))
		copy(lines, so.Items)
		for i := range lines {
			lines[i].Reserved = true
		}
		so.Items = lines
	})
}

func (s *salesService) DispatchSO(ctx context.Context, userID, userName, id string) (model.SalesOrder, error) {
	return s.transitionSO(ctx, userID, userName, id, model.SOStatusReserved, model.SOStatusDispatched, model.ActionDispatchOrder, nil)
}

func (s *salesService) DeliverSO(ctx context.Context, userID, userName, id string) (model.SalesOrder, error) {
	return s.transitionSO(ctx, userID, userName, id, model.SOStatusDispatched, model.SOStatusDelivered, model.ActionDeliverOrder, nil)
}

// CancelSO cancels from any state, Delivered included. Only an order that is
// already Cancelled is rejected.
func (s *salesService) CancelSO(ctx context.Context, userID, userName, id string) (model.SalesOrder, error) {
	current, err := s.stores.SalesOrders.Get(id)
	if err != nil {
		return model.SalesOrder{}, fmt.Errorf("sales order %s: %w", id, ErrNotFound)
	}
	if current.Status == model.SOStatusCancelled {
		return model.SalesOrder{}, fmt.Errorf("sales order is already Cancelled: %w", ErrInvalidState)
	}
	return s.transitionSO(ctx, userID, userName, id, current.Status, model.SOStatusCancelled, model.ActionCancelSO, nil)
}

// Invoice projects the invoice view of an order without changing any state
func (s *salesService) Invoice(ctx context.Context, id string) (model.Invoice, error) {
	so, err := s.stores.SalesOrders.Get(id)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("sales order %s: %w", id, ErrNotFound)
	}
	return model.ProjectInvoice(so, time.Now()), nil
}
