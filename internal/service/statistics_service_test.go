package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventorypro/internal/service"
)

func TestDashboardStats(t *testing.T) {
	s, _, _ := newFixture(t)
	svc := service.NewStatisticsService(s)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockItems)
	assert.Equal(t, 3, stats.Warehouses)

	// 150 x 12.99 + 320 x 8.99 + 32 x 24.99
	expected := decimal.NewFromFloat(5624.98)
	assert.True(t, stats.StockValue.Equal(expected), "got %s", stats.StockValue)
}

func TestAnalyticsSeries(t *testing.T) {
	s, _, _ := newFixture(t)
	svc := service.NewStatisticsService(s)

	analytics, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, analytics.SalesVsPurchases)

	salesTotal := decimal.Zero
	purchasesTotal := decimal.Zero
	for _, m := range analytics.SalesVsPurchases {
		salesTotal = salesTotal.Add(m.Sales)
		purchasesTotal = purchasesTotal.Add(m.Purchases)
	}
	assert.True(t, salesTotal.Equal(decimal.NewFromFloat(874.25)), "got %s", salesTotal)
	assert.True(t, purchasesTotal.Equal(decimal.NewFromFloat(1748.50)), "got %s", purchasesTotal)

	require.Len(t, analytics.ByCategory, 2)
	byName := map[string]int{}
	for _, c := range analytics.ByCategory {
		byName[c.Name] = c.Value
	}
	assert.Equal(t, 2, byName["Electronics"])
	assert.Equal(t, 1, byName["Office Supplies"])
}

func TestAnalyticsExcludesCancelledOrders(t *testing.T) {
	s, audit, hub := newFixture(t)
	sales := service.NewSalesService(s, audit, hub)
	stats := service.NewStatisticsService(s)
	so := seededSO(t, s)

	_, err := sales.CancelSO(context.Background(), "u1", "Tester", so.ID.String())
	require.NoError(t, err)

	analytics, err := stats.Analytics(context.Background())
	require.NoError(t, err)
	for _, m := range analytics.SalesVsPurchases {
		assert.True(t, m.Sales.IsZero(), "cancelled sales leaked into %s", m.Month)
	}
}
