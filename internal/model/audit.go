package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateProduct   = "CREATE_PRODUCT"
	ActionUpdateProduct   = "UPDATE_PRODUCT"
	ActionDeleteProduct   = "DELETE_PRODUCT"
	ActionAdjustStock     = "ADJUST_STOCK"
	ActionUpdateBatches   = "UPDATE_BATCHES"
	ActionCreatePO        = "CREATE_PURCHASE_ORDER"
	ActionUpdatePO        = "UPDATE_PURCHASE_ORDER"
	ActionApprovePO       = "APPROVE_PURCHASE_ORDER"
	ActionReceiveGoods    = "RECEIVE_GOODS"
	ActionCancelPO        = "CANCEL_PURCHASE_ORDER"
	ActionCreateSO        = "CREATE_SALES_ORDER"
	ActionUpdateSO        = "UPDATE_SALES_ORDER"
	ActionReserveStock    = "RESERVE_STOCK"
	ActionDispatchOrder   = "DISPATCH_ORDER"
	ActionDeliverOrder    = "DELIVER_ORDER"
	ActionCancelSO        = "CANCEL_SALES_ORDER"
	ActionCreatePartner   = "CREATE_PARTNER"
	ActionUpdatePartner   = "UPDATE_PARTNER"
	ActionSetPartnerState = "SET_PARTNER_STATUS"
	ActionCreateWarehouse = "CREATE_WAREHOUSE"
	ActionDeleteWarehouse = "DELETE_WAREHOUSE"
	ActionCreateLocation  = "CREATE_LOCATION"
	ActionCreateTransfer  = "CREATE_TRANSFER"
	ActionUpdateTransfer  = "UPDATE_TRANSFER"
	ActionCreateUser      = "CREATE_USER"
	ActionUpdateUser      = "UPDATE_USER"
	ActionDeleteUser      = "DELETE_USER"
	ActionUpdateSettings  = "UPDATE_SETTINGS"
)

// AuditLog tracks who did what and when for every mutating operation. The
// record only lives for the process lifetime, like everything else in the
// store layer.
type AuditLog struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	UserName   string    `json:"user_name,omitempty"`
	Action     string    `json:"action"`
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name,omitempty"`
	Details    string    `json:"details"` // serialized JSON payload of the action
	CreatedAt  time.Time `json:"created_at"`
}
