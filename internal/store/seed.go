package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"inventorypro/internal/model"
)

// Seed loads the demo dataset the dashboard ships with: a small catalog,
// stock for two items, one purchase order, one sales order, partners,
// warehouses with locations and two in-flight transfers, and one account per
// role. Safe to call exactly once on an empty Stores.
func Seed(s *Stores, now time.Time) error {
	paper := model.Product{
		ID: uuid.New(), Name: "Office Paper A4", SKU: "OFF-001",
		Description: "A4 multipurpose paper, 500 sheets per ream",
		Category:    "Office Supplies",
		Price:       decimal.RequireFromString("12.99"),
		Stock:       150, MinStock: 50,
		Warehouse: "main-warehouse", Location: "A1-S1-B1",
		CreatedAt: now, UpdatedAt: now,
	}
	cable := model.Product{
		ID: uuid.New(), Name: "USB Cable Type-C", SKU: "ELE-045",
		Description: "1m braided USB-C charging cable",
		Category:    "Electronics",
		Price:       decimal.RequireFromString("8.99"),
		Stock:       320, MinStock: 100,
		Warehouse: "main-warehouse", Location: "A1-S2-B3",
		CreatedAt: now, UpdatedAt: now,
	}
	mouse := model.Product{
		ID: uuid.New(), Name: "Wireless Mouse", SKU: "ELE-023",
		Description: "2.4GHz wireless optical mouse",
		Category:    "Electronics",
		Price:       decimal.RequireFromString("24.99"),
		Stock:       32, MinStock: 50,
		Warehouse: "distribution-center", Location: "C1-S2-B7",
		CreatedAt: now, UpdatedAt: now,
	}
	for _, p := range []model.Product{paper, cable, mouse} {
		if err := s.Products.Insert(p); err != nil {
			return err
		}
	}

	expiry := func(date string) *time.Time {
		t, _ := time.Parse("2006-01-02", date)
		return &t
	}
	stockItems := []model.StockItem{
		{
			ID: uuid.New(), ProductID: paper.ID, ProductName: paper.Name, SKU: paper.SKU,
			CurrentStock: 150, MinStock: 50, MaxStock: 500,
			WarehouseID: "main-warehouse", Location: "A1-S1-B1",
			LastUpdated: now,
			Batches: []model.Batch{
				{BatchNumber: "B001", Quantity: 100, ExpiryDate: expiry("2025-12-31"), Status: model.BatchStatusGood},
				{BatchNumber: "B002", Quantity: 50, ExpiryDate: expiry("2025-06-30"), Status: model.BatchStatusGood},
			},
		},
		{
			ID: uuid.New(), ProductID: mouse.ID, ProductName: mouse.Name, SKU: mouse.SKU,
			CurrentStock: 32, MinStock: 50, MaxStock: 200,
			WarehouseID: "distribution-center", Location: "C1-S2-B7",
			LastUpdated: now,
			Batches: []model.Batch{
				{BatchNumber: "B003", Quantity: 32, Status: model.BatchStatusGood},
			},
		},
	}
	for _, si := range stockItems {
		if err := s.Stock.Insert(si); err != nil {
			return err
		}
	}

	vendor := model.Vendor{
		ID: uuid.New(), Name: "ABC Suppliers Ltd",
		ContactPerson: "John Smith", Email: "john@abcsuppliers.com",
		Phone: "+1-555-0123", Address: "123 Industrial Ave, City, State 12345",
		GSTIN: "GSTIN123456789", PaymentTerms: "Net 30",
		Status:    model.PartnerStatusActive,
		Documents: []model.PartnerDocument{{Name: "Certificate.pdf", Type: "Certificate", UploadDate: now}},
		CreatedAt: now, UpdatedAt: now,
	}
	customer := model.Customer{
		ID: uuid.New(), Name: "Tech Solutions Inc",
		ContactPerson: "Jane Doe", Email: "jane@techsolutions.com",
		Phone: "+1-555-0456", Address: "456 Business Blvd, City, State 67890",
		GSTIN:       "GSTIN987654321",
		CreditLimit: decimal.NewFromInt(50000), PaymentTerms: "Net 15",
		Status:    model.PartnerStatusActive,
		CreatedAt: now, UpdatedAt: now,
	}

	poItems := []model.LineItem{
		{ProductID: paper.ID.String(), ProductName: paper.Name, Quantity: 100, UnitPrice: paper.Price},
		{ProductID: cable.ID.String(), ProductName: cable.Name, Quantity: 50, UnitPrice: cable.Price},
	}
	for i := range poItems {
		poItems[i].Recalculate()
	}
	po := model.PurchaseOrder{
		ID: uuid.New(), PONumber: "PO-2024-001",
		VendorID: vendor.ID.String(), VendorName: vendor.Name,
		Status:      model.POStatusPending,
		TotalAmount: model.SumLineTotals(poItems),
		OrderDate:   now.AddDate(0, 0, -7), ExpectedDelivery: now.AddDate(0, 0, 7),
		Items:     poItems,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := s.PurchaseOrders.Insert(po); err != nil {
		return err
	}
	vendor.OrderHistory = []model.OrderRef{
		{Number: po.PONumber, Date: po.OrderDate, Amount: po.TotalAmount, Status: po.Status},
	}
	if err := s.Vendors.Insert(vendor); err != nil {
		return err
	}

	soItems := []model.SalesLine{
		{LineItem: model.LineItem{ProductID: paper.ID.String(), ProductName: paper.Name, Quantity: 50, UnitPrice: paper.Price}},
		{LineItem: model.LineItem{ProductID: cable.ID.String(), ProductName: cable.Name, Quantity: 25, UnitPrice: cable.Price}},
	}
	for i := range soItems {
		soItems[i].Recalculate()
	}
	so := model.SalesOrder{
		ID: uuid.New(), OrderNumber: "SO-2024-001",
		CustomerID: customer.ID.String(), CustomerName: customer.Name,
		Status:      model.SOStatusConfirmed,
		TotalAmount: model.SumSalesLines(soItems),
		Currency:    "USD",
		OrderDate:   now.AddDate(0, 0, -3), DeliveryDate: now.AddDate(0, 0, 2),
		Items:     soItems,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := s.SalesOrders.Insert(so); err != nil {
		return err
	}
	customer.OrderHistory = []model.OrderRef{
		{Number: so.OrderNumber, Date: so.OrderDate, Amount: so.TotalAmount, Status: so.Status},
	}
	if err := s.Customers.Insert(customer); err != nil {
		return err
	}

	warehouses := []model.Warehouse{
		{ID: "main-warehouse", Name: "Main Warehouse", Address: "New York, NY", CapacityPct: 85, Items: 1250, Staff: 12, CreatedAt: now, UpdatedAt: now},
		{ID: "west-coast-hub", Name: "West Coast Hub", Address: "Los Angeles, CA", CapacityPct: 67, Items: 890, Staff: 8, CreatedAt: now, UpdatedAt: now},
		{ID: "distribution-center", Name: "Distribution Center", Address: "Chicago, IL", CapacityPct: 92, Items: 1580, Staff: 15, CreatedAt: now, UpdatedAt: now},
	}
	for _, w := range warehouses {
		if err := s.Warehouses.Insert(w); err != nil {
			return err
		}
	}

	locations := []model.Location{
		{
			ID: uuid.New(), WarehouseID: "main-warehouse", Rack: "A1", Shelf: "S1", Bin: "B1",
			Capacity: 100, Occupied: 75, Products: []string{"OFF-001", "OFF-002"},
			Coordinates: &model.Coordinates{X: 10, Y: 5, Z: 1},
			CreatedAt:   now, UpdatedAt: now,
		},
		{
			ID: uuid.New(), WarehouseID: "main-warehouse", Rack: "A1", Shelf: "S2", Bin: "B3",
			Capacity: 80, Occupied: 32, Products: []string{"ELE-045"},
			Coordinates: &model.Coordinates{X: 10, Y: 5, Z: 2},
			CreatedAt:   now, UpdatedAt: now,
		},
	}
	for _, l := range locations {
		if err := s.Locations.Insert(l); err != nil {
			return err
		}
	}

	transfers := []model.StockTransfer{
		{
			ID: uuid.New(), ProductSKU: "OFF-001", ProductName: "Office Paper A4", Quantity: 50,
			FromWarehouse: "main-warehouse", ToWarehouse: "west-coast-hub",
			FromLocation: "A1-S1-B1", ToLocation: "B2-S3-B5",
			Status: model.TransferStatusPending, RequestedBy: "John Admin",
			RequestedAt: now.AddDate(0, 0, -1),
			Notes:       "Urgent transfer for West Coast operations",
		},
		{
			ID: uuid.New(), ProductSKU: "ELE-045", ProductName: "USB Cable Type-C", Quantity: 25,
			FromWarehouse: "distribution-center", ToWarehouse: "main-warehouse",
			FromLocation: "C1-S2-B7", ToLocation: "A2-S1-B3",
			Status: model.TransferStatusInTransit, RequestedBy: "Sarah Manager",
			RequestedAt: now.AddDate(0, 0, -2),
		},
	}
	for _, t := range transfers {
		if err := s.Transfers.Insert(t); err != nil {
			return err
		}
	}

	return seedUsers(s, now)
}

// seedUsers creates one account per role with the demo password
func seedUsers(s *Stores, now time.Time) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("inventory123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	users := []model.User{
		{ID: uuid.New(), Name: "John Admin", Email: "admin@inventorypro.com", Role: model.RoleAdministrator},
		{ID: uuid.New(), Name: "Sarah Manager", Email: "manager@inventorypro.com", Role: model.RoleManager},
		{ID: uuid.New(), Name: "Mike Staff", Email: "staff@inventorypro.com", Role: model.RoleStaff},
		{ID: uuid.New(), Name: "Anna Auditor", Email: "auditor@inventorypro.com", Role: model.RoleAuditor},
	}
	for _, u := range users {
		u.Password = string(hash)
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := s.Users.Insert(u); err != nil {
			return err
		}
	}
	return nil
}
