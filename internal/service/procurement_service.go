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
type OrderLineRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
}

type CreatePORequest struct {
	VendorID         string             `json:"vendor_id" binding:"required"`
	Status           string             `json:"status" binding:"omitempty,oneof=Draft Pending"`
	ExpectedDelivery time.Time          `json:"expected_delivery" binding:"required"`
	Items            []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdatePORequest struct {
	ExpectedDelivery time.Time          `json:"expected_delivery" binding:"required"`
	Items            []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

type GRNItemRequest struct {
	ProductID        string `json:"product_id" binding:"required"`
	ReceivedQuantity int    `json:"received_quantity" binding:"min=0"`
}

type ReceiveGoodsRequest struct {
	ReceivedDate time.Time        `json:"received_date"`
	Notes        string           `json:"notes"`
	Items        []GRNItemRequest `json:"items" binding:"required,min=1,dive"`
}

type ProcurementService interface {
	ListPOs(ctx context.Context, page, limit int, search, status string) ([]model.PurchaseOrder, int, error)
	GetPO(ctx context.Context, id string) (model.PurchaseOrder, error)
	CreatePO(ctx context.Context, userID, userName string, req CreatePORequest) (model.PurchaseOrder, error)
	UpdatePO(ctx context.Context, userID, userName, id string, req UpdatePORequest) (model.PurchaseOrder, error)
	SubmitPO(ctx context.Context, userID, userName, id string) (model.PurchaseOrder, error)
	ApprovePO(ctx context.Context, userID, userName, id string) (model.PurchaseOrder, error)
	CancelPO(ctx context.Context, userID, userName, id string) (model.PurchaseOrder, error)
	ReceiveGoods(ctx context.Context, userID, userName, poID string, req ReceiveGoodsRequest) (model.GoodsReceivedNote, error)
	ListGRNs(ctx context.Context, page, limit int) ([]model.GoodsReceivedNote, int, error)
}

type procurementService struct {
	stores *store.Stores
	audit  AuditService
	hub    *ws.Hub
}

func NewProcurementService(stores *store.Stores, audit AuditService, hub *ws.Hub) ProcurementService {
	return &procurementService{stores: stores, audit: audit, hub: hub}
}

// buildLines converts request lines into stored lines with recomputed totals
func buildLines(items []OrderLineRequest) []model.LineItem {
	lines := make([]model.LineItem, 0, len(items))
	for _, it := range items {
		li := model.LineItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   decimal.NewFromFloat(it.UnitPrice),
		}
		li.Recalculate()
		lines = append(lines, li)
	}
	return lines
}

func (s *procurementService) ListPOs(ctx context.Context, page, limit int, search, status string) ([]model.PurchaseOrder, int, error) {
	search = strings.ToLower(strings.TrimSpace(search))
	matched := s.stores.PurchaseOrders.Filter(func(po model.PurchaseOrder) bool {
		if status != "" && po.Status != status {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(po.PONumber), search) ||
			strings.Contains(strings.ToLower(po.VendorName), search)
	})

	paged, total := pagination.Window(matched, pagination.Of(page, limit))
	return paged, total, nil
}

func (s *procurementService) GetPO(ctx context.Context, id string) (model.PurchaseOrder, error) {
	po, err := s.stores.PurchaseOrders.Get(id)
	if err != nil {
		return model.PurchaseOrder{}, fmt.Errorf("purchase order %s: %w", id, ErrNotFound)
	}
	return po, nil
}

func (s *procurementService) CreatePO(ctx context.Context, userID, userName string, req CreatePORequest) (model.PurchaseOrder, error) {
	vendor, err := s.stores.Vendors.Get(req.VendorID)
	if err != nil {
		return model.PurchaseOrder{}, fmt.Errorf("vendor %s: %w", req.VendorID, ErrNotFound)
	}

	status := req.Status
	if status == "" {
		status = model.POStatusDraft
	}

	now := time.Now()
	lines := buildLines(req.Items)
	po := model.PurchaseOrder{
		ID:               uuid.New(),
		PONumber:         store.NextDocumentNumber("PO", now, s.stores.PurchaseOrders.Len()),
		VendorID:         vendor.ID.String(),
		VendorName:       vendor.Name,
		Status:           status,
		TotalAmount:      model.SumLineTotals(lines),
		OrderDate:        now,
		ExpectedDelivery: req.ExpectedDelivery,
		Items:            lines,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.stores.PurchaseOrders.Insert(po); err != nil {
		return model.PurchaseOrder{}, fmt.Errorf("failed to create purchase order: %w", err)
	}

	s.audit.Record(ctx, userID, userName, model.ActionCreatePO, po.ID.String(), po.PONumber, req)
	return po, nil
}

func (s *procurementService) UpdatePO(ctx context.Context, userID, userName, id string, req UpdatePORequest) (model.PurchaseOrder, error) {
	current, err := s.stores.PurchaseOrders.Get(id)
	if err != nil {
		return model.PurchaseOrder{}, fmt.Errorf("purchase order %s: %w", id, ErrNotFound)
	}
	if current.Status != model.POStatusDraft && current.Status != model.POStatusPending {
		return model.PurchaseOrder{}, fmt.Errorf("cannot edit a %s purchase order: %w", current.Status, ErrInvalidState)
	}

	lines := buildLines(req.Items)
	updated, err := s.stores.PurchaseOrders.Update(id, func(po model.PurchaseOrder) model.PurchaseOrder {
		po.Items = lines
		po.TotalAmount = model.SumLineTotals(lines)
		po.ExpectedDelivery = req.ExpectedDelivery
		po.UpdatedAt = time.Now()
		return po
	})
	if err != nil {
		return model.PurchaseOrder{}, fmt.Errorf("purchase order %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionUpdatePO, updated.ID.String(), updated.PONumber, req)
	return updated, nil
}

// transitionPO moves a PO from one status to another, auditing and broadcasting
func (s *procurementService) transitionPO(ctx context.Context, userID, userName, id, from, to, action string) (model.PurchaseOrder, error) {
	current, err := s.stores.PurchaseOrders.Get(id)
	if err != nil {
		return model.PurchaseOrder{}, fmt.Errorf("purchase order %s: %w", id, ErrNotFound)
	}
	if current.Status != from {
		return model.PurchaseOrder{}, fmt.Errorf("purchase order is %s, expected %s: %w", current.Status, from, ErrInvalidState)
	}

	updated, err := s.stores.PurchaseOrders.Update(id, func(po model.PurchaseOrder) model.PurchaseOrder {
		po.Status = to
		po.UpdatedAt = time.Now()
		return po
	})
	if err != nil {
		return model.PurchaseOrder{}, fmt.Errorf("purchase order %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, action, updated.ID.String(), updated.PONumber, map[string]interface{}{
		"from": from,
		"to":   to,
	})
	s.hub.Publish(ws.EventOrderStatus, map[string]interface{}{
		"kind":   "purchase_order",
		"id":     updated.ID.String(),
		"number": updated.PONumber,
		"status": updated.Status,
	})
	return updated, nil
}

func (s *procurementService) SubmitPO(ctx context.Context, userID, userName, id string) (model.PurchaseOrder, error) {
	return s.transitionPO(ctx, userID, userName, id, model.POStatusDraft, model.POStatusPending, model.ActionUpdatePO)
}

func (s *procurementService) ApprovePO(ctx context.Context, userID, userName, id string) (model.PurchaseOrder, error) {
	return s.transitionPO(ctx, userID, userName, id, model.POStatusPending, model.POStatusApproved, model.ActionApprovePO)
}

func (s *procurementService) CancelPO(ctx context.Context, userID, userName, id string) (model.PurchaseOrder, error) {
	current, err := s.stores.PurchaseOrders.Get(id)
	if err != nil {
		return model.PurchaseOrder{}, fmt.Errorf("purchase order %s: %w", id, ErrNotFound)
	}
	if current.Status == model.POStatusReceived || current.Status == model.POStatusCancelled {
		return model.PurchaseOrder{}, fmt.Errorf("cannot cancel a %s purchase order: %w", current.Status, ErrInvalidState)
	}
	return s.transitionPO(ctx, userID, userName, id, current.Status, model.POStatusCancelled, model.ActionCancelPO)
}

// ReceiveGoods records a goods received note against an Approved purchase
// order and marks it Received. Receipt does not feed back into stock
// quantities; adjustments stay a separate, explicit operation.
func (s *procurementService) ReceiveGoods(ctx context.Context, userID, userName, poID string, req ReceiveGoodsRequest) (model.GoodsReceivedNote, error) {
	po, err := s.stores.PurchaseOrders.Get(poID)
	if err != nil {
		return model.GoodsReceivedNote{}, fmt.Errorf("purchase order %s: %w", poID, ErrNotFound)
	}
	if po.Status != model.POStatusApproved {
		return model.GoodsReceivedNote{}, fmt.Errorf("purchase order is %s, expected %s: %w", po.Status, model.POStatusApproved, ErrInvalidState)
	}

	received := make(map[string]int, len(req.Items))
	for _, it := range req.Items {
		received[it.ProductID] = it.ReceivedQuantity
	}

	items := make([]model.GRNItem, 0, len(po.Items))
	for _, line := range po.Items {
		qty, ok := received[line.ProductID]
		if !ok {
			return model.GoodsReceivedNote{}, fmt.Errorf("missing receipt for product %s: %w", line.ProductID, ErrValidation)
		}
		items = append(items, model.GRNItem{
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			OrderedQuantity:  line.Quantity,
			ReceivedQuantity: qty,
			UnitPrice:        line.UnitPrice,
			IsReceived:       qty >= line.Quantity,
		})
	}

	now := time.Now()
	receivedDate := req.ReceivedDate
	if receivedDate.IsZero() {
		receivedDate = now
	}
	grn := model.GoodsReceivedNote{
		ID:           uuid.New(),
		GRNNumber:    store.NextDocumentNumber("GRN", now, s.stores.GRNs.Len()),
		POID:         po.ID,
		PONumber:     po.PONumber,
		VendorName:   po.VendorName,
		ReceivedDate: receivedDate,
		ReceivedBy:   userName,
		Notes:        req.Notes,
		Items:        items,
		CreatedAt:    now,
	}
	if err := s.stores.GRNs.Insert(grn); err != nil {
		return model.GoodsReceivedNote{}, fmt.Errorf("failed to record goods receipt: %w", err)
	}

	if _, err := s.transitionPO(ctx, userID, userName, poID, model.POStatusApproved, model.POStatusReceived, model.ActionReceiveGoods); err != nil {
		return model.GoodsReceivedNote{}, err
	}
	return grn, nil
}

func (s *procurementService) ListGRNs(ctx context.Context, page, limit int) ([]model.GoodsReceivedNote, int, error) {
	paged, total := pagination.Window(s.stores.GRNs.List(), pagination.Of(page, limit))
	return paged, total, nil
}
