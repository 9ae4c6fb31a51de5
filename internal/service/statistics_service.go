package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"inventorypro/internal/model"
	"inventorypro/internal/store"
)

// StatisticsService computes the dashboard cards and the analytics charts.
// Everything is a pure reduction over the collections; nothing is cached.
type StatisticsService interface {
	Dashboard(ctx context.Context) (model.DashboardStats, error)
	Analytics(ctx context.Context) (model.AnalyticsResponse, error)
}

type statisticsService struct {
	stores *store.Stores
}

func NewStatisticsService(stores *store.Stores) StatisticsService {
	return &statisticsService{stores: stores}
}

func (s *statisticsService) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	stats := model.DashboardStats{
		Warehouses: s.stores.Warehouses.Len(),
		StockValue: decimal.Zero,
	}
	for _, p := range s.stores.Products.List() {
		stats.TotalProducts++
		stats.StockValue = stats.StockValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	for _, it := range s.stores.Stock.List() {
		if it.IsLowStock() {
			stats.LowStockItems++
		}
	}
	return stats, nil
}

func (s *statisticsService) Analytics(ctx context.Context) (model.AnalyticsResponse, error) {
	type flow struct {
		sales     decimal.Decimal
		purchases decimal.Decimal
	}
	months := map[string]*flow{}
	monthOf := func(key string) *flow {
		f, ok := months[key]
		if !ok {
			f = &flow{sales: decimal.Zero, purchases: decimal.Zero}
			months[key] = f
		}
		return f
	}

	// Cancelled orders stay out of both series
	for _, so := range s.stores.SalesOrders.List() {
		if so.Status == model.SOStatusCancelled {
			continue
		}
		f := monthOf(so.OrderDate.Format("2006-01"))
		f.sales = f.sales.Add(so.TotalAmount)
	}
	for _, po := range s.stores.PurchaseOrders.List() {
		if po.Status == model.POStatusCancelled {
			continue
		}
		f := monthOf(po.OrderDate.Format("2006-01"))
		f.purchases = f.purchases.Add(po.TotalAmount)
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]model.MonthlyFlow, 0, len(keys))
	for _, k := range keys {
		series = append(series, model.MonthlyFlow{
			Month:     k,
			Sales:     months[k].sales,
			Purchases: months[k].purchases,
		})
	}

	counts := map[string]int{}
	var categories []string
	for _, p := range s.stores.Products.List() {
		if _, seen := counts[p.Category]; !seen {
			categories = append(categories, p.Category)
		}
		counts[p.Category]++
	}
	sort.Strings(categories)

	shares := make([]model.CategoryShare, 0, len(categories))
	for _, c := range categories {
		shares = append(shares, model.CategoryShare{Name: c, Value: counts[c]})
	}

	return model.AnalyticsResponse{
		SalesVsPurchases: series,
		ByCategory:       shares,
	}, nil
}
