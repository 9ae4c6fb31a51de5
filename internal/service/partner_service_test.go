package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventorypro/internal/model"
	"inventorypro/internal/service"
)

func TestSetVendorStatusAnyToAny(t *testing.T) {
	s, audit, _ := newFixture(t)
	svc := service.NewPartnerService(s, audit)
	ctx := context.Background()
	vendor := s.Vendors.List()[0]
	id := vendor.ID.String()

	// Every state is reachable from every other, including out of Blacklisted
	for _, status := range []string{model.PartnerStatusBlacklisted, model.PartnerStatusActive, model.PartnerStatusInactive} {
		got, err := svc.SetVendorStatus(ctx, "u1", "Tester", id, service.SetPartnerStatusRequest{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}
}

func TestCreateCustomerDefaults(t *testing.T) {
	s, audit, _ := newFixture(t)
	svc := service.NewPartnerService(s, audit)

	got, err := svc.CreateCustomer(context.Background(), "u1", "Tester", service.CustomerRequest{
		Name: "Globex Corp", ContactPerson: "Hank Scorpio", Email: "hank@globex.com",
		CreditLimit: 25000, PaymentTerms: "Net 30",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PartnerStatusActive, got.Status)
	assert.NotNil(t, got.OrderHistory)
	assert.Empty(t, got.OrderHistory)
}

func TestListVendorsBySearchAndStatus(t *testing.T) {
	s, audit, _ := newFixture(t)
	svc := service.NewPartnerService(s, audit)
	ctx := context.Background()

	byName, _, err := svc.ListVendors(ctx, 1, 20, "abc", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "ABC Suppliers Ltd", byName[0].Name)

	inactive, _, err := svc.ListVendors(ctx, 1, 20, "", model.PartnerStatusInactive)
	require.NoError(t, err)
	assert.Empty(t, inactive)
}
