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
type VendorRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	GSTIN         string `json:"gstin"`
	VATNumber     string `json:"vat_number"`
	PaymentTerms  string `json:"payment_terms"`
}

type CustomerRequest struct {
	Name          string  `json:"name" binding:"required"`
	ContactPerson string  `json:"contact_person" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	GSTIN         string  `json:"gstin"`
	VATNumber     string  `json:"vat_number"`
	CreditLimit   float64 `json:"credit_limit" binding:"min=0"`
	PaymentTerms  string  `json:"payment_terms"`
}

type SetPartnerStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive Blacklisted"`
}

type PartnerService interface {
	ListVendors(ctx context.Context, page, limit int, search, status string) ([]model.Vendor, int, error)
	GetVendor(ctx context.Context, id string) (model.Vendor, error)
	CreateVendor(ctx context.Context, userID, userName string, req VendorRequest) (model.Vendor, error)
	UpdateVendor(ctx context.Context, userID, userName, id string, req VendorRequest) (model.Vendor, error)
	SetVendorStatus(ctx context.Context, userID, userName, id string, req SetPartnerStatusRequest) (model.Vendor, error)

	ListCustomers(ctx context.Context, page, limit int, search, status string) ([]model.Customer, int, error)
	GetCustomer(ctx context.Context, id string) (model.Customer, error)
	CreateCustomer(ctx context.Context, userID, userName string, req CustomerRequest) (model.Customer, error)
	UpdateCustomer(ctx context.Context, userID, userName, id string, req CustomerRequest) (model.Customer, error)
	SetCustomerStatus(ctx context.Context, userID, userName, id string, req SetPartnerStatusRequest) (model.Customer, error)
}

type partnerService struct {
	stores *store.Stores
	audit  AuditService
}

func NewPartnerService(stores *store.Stores, audit AuditService) PartnerService {
	return &partnerService{stores: stores, audit: audit}
}

func matchPartner(name, contact, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), search) ||
		strings.Contains(strings.ToLower(contact), search)
}

func (s *partnerService) ListVendors(ctx context.Context, page, limit int, search, status string) ([]model.Vendor, int, error) {
	search = strings.ToLower(strings.TrimSpace(search))
	matched := s.stores.Vendors.Filter(func(v model.Vendor) bool {
		if status != "" && v.Status != status {
			return false
		}
		return matchPartner(v.Name, v.ContactPerson, search)
	})

	paged, total := pagination.Window(matched, pagination.Of(page, limit))
	return paged, total, nil
}

func (s *partnerService) GetVendor(ctx context.Context, id string) (model.Vendor, error) {
	v, err := s.stores.Vendors.Get(id)
	if err != nil {
		return model.Vendor{}, fmt.Errorf("vendor %s: %w", id, ErrNotFound)
	}
	return v, nil
}

func (s *partnerService) CreateVendor(ctx context.Context, userID, userName string, req VendorRequest) (model.Vendor, error) {
	now := time.Now()
	v := model.Vendor{
		ID:            uuid.New(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		GSTIN:         req.GSTIN,
		VATNumber:     req.VATNumber,
		PaymentTerms:  req.PaymentTerms,
		Status:        model.PartnerStatusActive,
		OrderHistory:  []model.OrderRef{},
		Documents:     []model.PartnerDocument{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.stores.Vendors.Insert(v); err != nil {
		return model.Vendor{}, fmt.Errorf("failed to create vendor: %w", err)
	}

	s.audit.Record(ctx, userID, userName, model.ActionCreatePartner, v.ID.String(), v.Name, req)
	return v, nil
}

func (s *partnerService) UpdateVendor(ctx context.Context, userID, userName, id string, req VendorRequest) (model.Vendor, error) {
	updated, err := s.stores.Vendors.Update(id, func(v model.Vendor) model.Vendor {
		v.Name = req.Name
		v.ContactPerson = req.ContactPerson
		v.Email = req.Email
		v.Phone = req.Phone
		v.Address = req.Address
		v.GSTIN = req.GSTIN
		v.VATNumber = req.VATNumber
		v.PaymentTerms = req.PaymentTerms
		v.UpdatedAt = time.Now()
		return v
	})
	if err != nil {
		return model.Vendor{}, fmt.Errorf("vendor %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionUpdatePartner, updated.ID.String(), updated.Name, req)
	return updated, nil
}

// SetVendorStatus moves the vendor to any of the three states; there is no
// transition guard between them.
func (s *partnerService) SetVendorStatus(ctx context.Context, userID, userName, id string, req SetPartnerStatusRequest) (model.Vendor, error) {
	updated, err := s.stores.Vendors.Update(id, func(v model.Vendor) model.Vendor {
		v.Status = req.Status
		v.UpdatedAt = time.Now()
		return v
	})
	if err != nil {
		return model.Vendor{}, fmt.Errorf("vendor %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionSetPartnerState, updated.ID.String(), updated.Name, req)
	return updated, nil
}

func (s *partnerService) ListCustomers(ctx context.Context, page, limit int, search, status string) ([]model.Customer, int, error) {
	search = strings.ToLower(strings.TrimSpace(search))
	matched := s.stores.Customers.Filter(func(cu model.Customer) bool {
		if status != "" && cu.Status != status {
			return false
		}
		return matchPartner(cu.Name, cu.ContactPerson, search)
	})

	paged, total := pagination.Window(matched, pagination.Of(page, limit))
	return paged, total, nil
}

func (s *partnerService) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	cu, err := s.stores.Customers.Get(id)
	if err != nil {
		return model.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	return cu, nil
}

func (s *partnerService) CreateCustomer(ctx context.Context, userID, userName string, req CustomerRequest) (model.Customer, error) {
	now := time.Now()
	cu := model.Customer{
		ID:            uuid.New(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		GSTIN:         req.GSTIN,
		VATNumber:     req.VATNumber,
		CreditLimit:   decimal.NewFromFloat(req.CreditLimit),
		PaymentTerms:  req.PaymentTerms,
		Status:        model.PartnerStatusActive,
		OrderHistory:  []model.OrderRef{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.stores.Customers.Insert(cu); err != nil {
		return model.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	s.audit.Record(ctx, userID, userName, model.ActionCreatePartner, cu.ID.String(), cu.Name, req)
	return cu, nil
}

func (s *partnerService) UpdateCustomer(ctx context.Context, userID, userName, id string, req CustomerRequest) (model.Customer, error) {
	updated, err := s.stores.Customers.Update(id, func(cu model.Customer) model.Customer {
		cu.Name = req.Name
		cu.ContactPerson = req.ContactPerson
		cu.Email = req.Email
		cu.Phone = req.Phone
		cu.Address = req.Address
		cu.GSTIN = req.GSTIN
		cu.VATNumber = req.VATNumber
		cu.CreditLimit = decimal.NewFromFloat(req.CreditLimit)
		cu.PaymentTerms = req.PaymentTerms
		cu.UpdatedAt = time.Now()
		return cu
	})
	if err != nil {
		return model.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionUpdatePartner, updated.ID.String(), updated.Name, req)
	return updated, nil
}

func (s *partnerService) SetCustomerStatus(ctx context.Context, userID, userName, id string, req SetPartnerStatusRequest) (model.Customer, error) {
	updated, err := s.stores.Customers.Update(id, func(cu model.Customer) model.Customer {
		cu.Status = req.Status
		cu.UpdatedAt = time.Now()
		return cu
	})
	if err != nil {
		return model.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionSetPartnerState, updated.ID.String(), updated.Name, req)
	return updated, nil
}
