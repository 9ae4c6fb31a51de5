package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"inventorypro/internal/model"
	"inventorypro/internal/store"
	"inventorypro/pkg/pagination"
)

// DTOs
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	SKU         string  `json:"sku" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	MinStock    int     `json:"min_stock" binding:"min=0"`
	Warehouse   string  `json:"warehouse"`
	Location    string  `json:"location"`
	Barcode     string  `json:"barcode"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	SKU         string  `json:"sku" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	MinStock    int     `json:"min_stock" binding:"min=0"`
	Warehouse   string  `json:"warehouse"`
	Location    string  `json:"location"`
	Barcode     string  `json:"barcode"`
}

type ProductService interface {
	List(ctx context.Context, page, limit int, search, category string) ([]model.Product, int, error)
	Get(ctx context.Context, id string) (model.Product, error)
	Create(ctx context.Context, userID, userName string, req CreateProductRequest) (model.Product, error)
	Update(ctx context.Context, userID, userName, id string, req UpdateProductRequest) (model.Product, error)
	Delete(ctx context.Context, userID, userName, id string) error
}

type productService struct {
	stores *store.Stores
	audit  AuditService
}

func NewProductService(stores *store.Stores, audit AuditService) ProductService {
	return &productService{stores: stores, audit: audit}
}

func (s *productService) List(ctx context.Context, page, limit int, search, category string) ([]model.Product, int, error) {
	search = strings.ToLower(strings.TrimSpace(search))
	matched := s.stores.Products.Filter(func(p model.Product) bool {
		if category != "" && p.Category != category {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.SKU), search)
	})

	paged, total := pagination.Window(matched, pagination.Of(page, limit))
	return paged, total, nil
}

func (s *productService) Get(ctx context.Context, id string) (model.Product, error) {
	p, err := s.stores.Products.Get(id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return p, nil
}

func (s *productService) Create(ctx context.Context, userID, userName string, req CreateProductRequest) (model.Product, error) {
	if _, err := s.stores.Products.Find(func(p model.Product) bool { return p.SKU == req.SKU }); err == nil {
		return model.Product{}, fmt.Errorf("sku %q already in use: %w", req.SKU, ErrConflict)
	}

	now := time.Now()
	product := model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Category:    req.Category,
		Price:       decimal.NewFromFloat(req.Price),
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Warehouse:   req.Warehouse,
		Location:    req.Location,
		Barcode:     req.Barcode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.stores.Products.Insert(product); err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.audit.Record(ctx, userID, userName, model.ActionCreateProduct, product.ID.String(), product.Name, req)
	return product, nil
}

func (s *productService) Update(ctx context.Context, userID, userName, id string, req UpdateProductRequest) (model.Product, error) {
	if _, err := s.stores.Products.Find(func(p model.Product) bool {
		return p.SKU == req.SKU && p.ID.String() != id
	}); err == nil {
		return model.Product{}, fmt.Errorf("sku %q already in use: %w", req.SKU, ErrConflict)
	}

	updated, err := s.stores.Products.Update(id, func(p model.Product) model.Product {
		p.Name = req.Name
		p.SKU = req.SKU
		p.Description = req.Description
		p.Category = req.Category
		p.Price = decimal.NewFromFloat(req.Price)
		p.Stock = req.Stock
		p.MinStock = req.MinStock
		p.Warehouse = req.Warehouse
		p.Location = req.Location
		p.Barcode = req.Barcode
		p.UpdatedAt = time.Now()
		return p
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionUpdateProduct, updated.ID.String(), updated.Name, req)
	return updated, nil
}

func (s *productService) Delete(ctx context.Context, userID, userName, id string) error {
	product, err := s.stores.Products.Get(id)
	if err != nil {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err := s.stores.Products.Delete(id); err != nil {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionDeleteProduct, id, product.Name, map[string]interface{}{"deleted": true})
	return nil
}
