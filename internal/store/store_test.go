package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventorypro/internal/model"
)

type record struct {
	ID   string
	Name string
}

func newTestCollection() *Collection[record] {
	return NewCollection(func(r record) string { return r.ID })
}

func TestCollectionInsertAndGet(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Insert(record{ID: "a", Name: "first"}))

	got, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, c.Insert(record{ID: "a", Name: "dup"}), ErrDuplicate)
	assert.Equal(t, 1, c.Len())
}

func TestCollectionUpdate(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Insert(record{ID: "a", Name: "first"}))

	updated, err := c.Update("a", func(r record) record {
		r.Name = "changed"
		return r
	})
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Name)

	got, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Name)

	_, err = c.Update("missing", func(r record) record { return r })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionDeletePreservesOrder(t *testing.T) {
	c := newTestCollection()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, c.Insert(record{ID: id}))
	}

	require.NoError(t, c.Delete("b"))
	assert.ErrorIs(t, c.Delete("b"), ErrNotFound)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
}

func TestCollectionListInsertionOrder(t *testing.T) {
	c := newTestCollection()
	ids := []string{"z", "m", "a"}
	for _, id := range ids {
		require.NoError(t, c.Insert(record{ID: id}))
	}

	list := c.List()
	require.Len(t, list, 3)
	for i, id := range ids {
		assert.Equal(t, id, list[i].ID)
	}
}

func TestCollectionFilterAndFind(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Insert(record{ID: "a", Name: "x"}))
	require.NoError(t, c.Insert(record{ID: "b", Name: "y"}))
	require.NoError(t, c.Insert(record{ID: "c", Name: "x"}))

	matched := c.Filter(func(r record) bool { return r.Name == "x" })
	assert.Len(t, matched, 2)

	first, err := c.Find(func(r record) bool { return r.Name == "x" })
	require.NoError(t, err)
	assert.Equal(t, "a", first.ID)

	_, err = c.Find(func(r record) bool { return r.Name == "nope" })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextDocumentNumber(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "PO-2024-001", NextDocumentNumber("PO", now, 0))
	assert.Equal(t, "SO-2024-002", NextDocumentNumber("SO", now, 1))
	assert.Equal(t, "GRN-2024-013", NextDocumentNumber("GRN", now, 12))
}

func TestSeedPopulatesCollections(t *testing.T) {
	s := New()
	require.NoError(t, Seed(s, time.Now()))

	assert.Equal(t, 3, s.Products.Len())
	assert.Equal(t, 2, s.Stock.Len())
	assert.Equal(t, 1, s.PurchaseOrders.Len())
	assert.Equal(t, 1, s.SalesOrders.Len())
	assert.Equal(t, 1, s.Vendors.Len())
	assert.Equal(t, 1, s.Customers.Len())
	assert.Equal(t, 3, s.Warehouses.Len())
	assert.Equal(t, 2, s.Locations.Len())
	assert.Equal(t, 2, s.Transfers.Len())
	assert.Equal(t, 4, s.Users.Len())

	// Seeded order totals are derived from their lines, never hand-entered
	po := s.PurchaseOrders.List()[0]
	assert.True(t, po.TotalAmount.Equal(model.SumLineTotals(po.Items)), "PO total %s", po.TotalAmount)

	so := s.SalesOrders.List()[0]
	assert.True(t, so.TotalAmount.Equal(model.SumSalesLines(so.Items)), "SO total %s", so.TotalAmount)
}
