package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStockItemStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		min      int
		max      int
		expected string
	}{
		{"zero stock", 0, 50, 500, StockStatusOut},
		{"below min", 30, 50, 500, StockStatusLow},
		{"exactly min", 50, 50, 500, StockStatusLow},
		{"normal range", 150, 50, 500, StockStatusNormal},
		{"exactly max", 500, 50, 500, StockStatusOverstock},
		{"above max", 600, 50, 500, StockStatusOverstock},
		{"low beats overstock when min exceeds max", 40, 60, 30, StockStatusLow},
		{"zero beats everything", 0, 0, 0, StockStatusOut},
		{"dashboard low stock sample", 32, 50, 200, StockStatusLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := StockItem{CurrentStock: tt.current, MinStock: tt.min, MaxStock: tt.max}
			assert.Equal(t, tt.expected, item.Status())
		})
	}
}

func TestApplyAdjustment(t *testing.T) {
	tests := []struct {
		name           string
		current        int
		adjustmentType string
		quantity       int
		expected       int
	}{
		{"add increases", 150, AdjustmentAdd, 25, 175},
		{"remove decreases", 150, AdjustmentRemove, 25, 125},
		{"remove floors at zero", 32, AdjustmentRemove, 40, 0},
		{"remove exact amount", 32, AdjustmentRemove, 32, 0},
		{"set overrides", 150, AdjustmentSet, 75, 75},
		{"set to zero", 150, AdjustmentSet, 0, 0},
		{"unknown type is a no-op", 150, "transfer", 25, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyAdjustment(tt.current, tt.adjustmentType, tt.quantity))
		})
	}
}

func TestHasExpiringBatch(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	deadline := now.Add(30 * 24 * time.Hour)

	soon := now.Add(10 * 24 * time.Hour)
	far := now.Add(120 * 24 * time.Hour)

	item := StockItem{Batches: []Batch{
		{BatchNumber: "B001", Quantity: 100, ExpiryDate: &far, Status: BatchStatusGood},
	}}
	assert.False(t, item.HasExpiringBatch(deadline))

	item.Batches = append(item.Batches, Batch{BatchNumber: "B002", Quantity: 50, ExpiryDate: &soon, Status: BatchStatusGood})
	assert.True(t, item.HasExpiringBatch(deadline))

	noDates := StockItem{Batches: []Batch{{BatchNumber: "B003", Quantity: 10}}}
	assert.False(t, noDates.HasExpiringBatch(deadline))
}

func TestBatchQuantityTotal(t *testing.T) {
	item := StockItem{
		CurrentStock: 150,
		Batches: []Batch{
			{BatchNumber: "B001", Quantity: 100},
			{BatchNumber: "B002", Quantity: 40},
		},
	}
	// Batch totals may diverge from the headline stock figure
	assert.Equal(t, 140, item.BatchQuantityTotal())
	assert.NotEqual(t, item.CurrentStock, item.BatchQuantityTotal())
}
