package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationCode(t *testing.T) {
	loc := Location{Rack: "A1", Shelf: "S1", Bin: "B1"}
	assert.Equal(t, "A1-S1-B1", loc.Code())
}

func TestLocationUtilizationTier(t *testing.T) {
	tests := []struct {
		name     string
		occupied int
		capacity int
		expected string
	}{
		{"empty", 0, 100, UtilizationNormal},
		{"moderate", 32, 80, UtilizationNormal},
		{"just under high", 69, 100, UtilizationNormal},
		{"high boundary", 70, 100, UtilizationHigh},
		{"seeded slot at 75 percent", 75, 100, UtilizationHigh},
		{"critical boundary", 90, 100, UtilizationCritical},
		{"full", 100, 100, UtilizationCritical},
		{"zero capacity", 10, 0, UtilizationNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := Location{Occupied: tt.occupied, Capacity: tt.capacity}
			assert.Equal(t, tt.expected, loc.UtilizationTier())
		})
	}
}
