package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventorypro/internal/model"
	"inventorypro/internal/service"
	"inventorypro/internal/store"
)

func productBySKU(t *testing.T, s *store.Stores, sku string) model.Product {
	t.Helper()
	p, err := s.Products.Find(func(p model.Product) bool { return p.SKU == sku })
	require.NoError(t, err)
	return p
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	s, audit, _ := newFixture(t)
	svc := service.NewProductService(s, audit)

	_, err := svc.Create(context.Background(), "u1", "Tester", service.CreateProductRequest{
		Name: "Copy Paper", SKU: "OFF-001", Category: "Office Supplies", Price: 9.99,
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestUpdateProductRejectsSKUTakenByAnother(t *testing.T) {
	s, audit, _ := newFixture(t)
	svc := service.NewProductService(s, audit)
	mouse := productBySKU(t, s, "ELE-023")

	_, err := svc.Update(context.Background(), "u1", "Tester", mouse.ID.String(), service.UpdateProductRequest{
		Name: mouse.Name, SKU: "OFF-001", Category: mouse.Category, Price: 24.99,
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestUpdateProductKeepsOwnSKU(t *testing.T) {
	s, audit, _ := newFixture(t)
	svc := service.NewProductService(s, audit)
	mouse := productBySKU(t, s, "ELE-023")

	got, err := svc.Update(context.Background(), "u1", "Tester", mouse.ID.String(), service.UpdateProductRequest{
		Name: "Wireless Mouse Pro", SKU: "ELE-023", Category: mouse.Category, Price: 29.99,
	})
	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse Pro", got.Name)
	assert.Equal(t, "ELE-023", got.SKU)
}
