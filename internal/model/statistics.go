package model

import "github.com/shopspring/decimal"

// InventoryStats is the header block of the inventory control screen
type InventoryStats struct {
	TotalItems   int `json:"total_items"`
	LowStock     int `json:"low_stock"`
	OutOfStock   int `json:"out_of_stock"`
	ExpiringSoon int `json:"expiring_soon"`
}

// DashboardStats is the landing-page stats card row
type DashboardStats struct {
	TotalProducts int             `json:"total_products"`
	StockValue    decimal.Decimal `json:"stock_value"` // sum of stock × price over the catalog
	LowStockItems int             `json:"low_stock_items"`
	Warehouses    int             `json:"warehouses"`
}

// MonthlyFlow is one bar pair in the sales-vs-purchases chart
type MonthlyFlow struct {
	Month     string          `json:"month"` // "2024-01"
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
}

// CategoryShare is one slice of the inventory-by-category pie
type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"` // item count in the category
}

// AnalyticsResponse bundles both analytics charts
type AnalyticsResponse struct {
	SalesVsPurchases []MonthlyFlow   `json:"sales_vs_purchases"`
	ByCategory       []CategoryShare `json:"by_category"`
}
