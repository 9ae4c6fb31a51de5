package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventorypro/pkg/pagination"
)

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name  string
		page  int
		limit int
		want  []int
	}{
		{"first page", 1, 2, []int{1, 2}},
		{"middle page", 2, 2, []int{3, 4}},
		{"short last page", 3, 2, []int{5}},
		{"page past the end", 4, 2, []int{}},
		{"limit larger than set", 1, 10, []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total := pagination.Window(items, pagination.Of(tt.page, tt.limit))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(items), total)
		})
	}
}

func TestWindowEmptySet(t *testing.T) {
	got, total := pagination.Window([]string{}, pagination.Of(1, 20))
	assert.Empty(t, got)
	assert.Zero(t, total)
}

func TestOf(t *testing.T) {
	p := pagination.Of(3, 25)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 50, p.Offset)
}
