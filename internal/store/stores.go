package store

import (
	"fmt"
	"sync"
	"time"

	"inventorypro/internal/model"
)

// Stores bundles every collection the services operate on. One instance is
// created in main and shared; collection mutexes provide the only
// synchronization the single-process model needs.
type Stores struct {
	Products       *Collection[model.Product]
	Stock          *Collection[model.StockItem]
	PurchaseOrders *Collection[model.PurchaseOrder]
	GRNs           *Collection[model.GoodsReceivedNote]
	SalesOrders    *Collection[model.SalesOrder]
	Fulfillment    *Collection[model.FulfillmentOrder]
	Vendors        *Collection[model.Vendor]
	Customers      *Collection[model.Customer]
	Warehouses     *Collection[model.Warehouse]
	Locations      *Collection[model.Location]
	Transfers      *Collection[model.StockTransfer]
	Users          *Collection[model.User]
	Audit          *Collection[model.AuditLog]
	Settings       *SettingsStore
}

// New creates empty collections for every entity
func New() *Stores {
	return &Stores{
		Products:       NewCollection(func(v model.Product) string { return v.ID.String() }),
		Stock:          NewCollection(func(v model.StockItem) string { return v.ID.String() }),
		PurchaseOrders: NewCollection(func(v model.PurchaseOrder) string { return v.ID.String() }),
		GRNs:           NewCollection(func(v model.GoodsReceivedNote) string { return v.ID.String() }),
		SalesOrders:    NewCollection(func(v model.SalesOrder) string { return v.ID.String() }),
		Fulfillment:    NewCollection(func(v model.FulfillmentOrder) string { return v.ID.String() }),
		Vendors:        NewCollection(func(v model.Vendor) string { return v.ID.String() }),
		Customers:      NewCollection(func(v model.Customer) string { return v.ID.String() }),
		Warehouses:     NewCollection(func(v model.Warehouse) string { return v.ID }),
		Locations:      NewCollection(func(v model.Location) string { return v.ID.String() }),
		Transfers:      NewCollection(func(v model.StockTransfer) string { return v.ID.String() }),
		Users:          NewCollection(func(v model.User) string { return v.ID.String() }),
		Audit:          NewCollection(func(v model.AuditLog) string { return v.ID.String() }),
		Settings:       NewSettingsStore(model.DefaultSettings()),
	}
}

// NextDocumentNumber builds sequence numbers like PO-2024-001 from the count
// of existing documents, mirroring how the dashboard numbered its records.
func NextDocumentNumber(prefix string, now time.Time, existing int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, now.Year(), existing+1)
}

// SettingsStore guards the single settings record
type SettingsStore struct {
	mu       sync.RWMutex
	settings model.Settings
}

// NewSettingsStore creates a settings store with the given initial record
func NewSettingsStore(initial model.Settings) *SettingsStore {
	return &SettingsStore{settings: initial}
}

// Get returns the current settings
func (s *SettingsStore) Get() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Put replaces the settings record wholesale
func (s *SettingsStore) Put(v model.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = v
}
