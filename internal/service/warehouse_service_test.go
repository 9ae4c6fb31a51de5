package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventorypro/internal/model"
	"inventorypro/internal/service"
)

func TestCreateTransferValidation(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewWarehouseService(s, audit, hub)
	ctx := context.Background()

	_, err := svc.CreateTransfer(ctx, "u1", "Tester", service.CreateTransferRequest{
		ProductSKU: "OFF-001", ProductName: "Office Paper A4", Quantity: 10,
		FromWarehouse: "main-warehouse", ToWarehouse: "main-warehouse",
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.CreateTransfer(ctx, "u1", "Tester", service.CreateTransferRequest{
		ProductSKU: "OFF-001", ProductName: "Office Paper A4", Quantity: 10,
		FromWarehouse: "main-warehouse", ToWarehouse: "nowhere",
	})
	assert.ErrorIs(t, err, service.ErrNotFound)

	got, err := svc.CreateTransfer(ctx, "u1", "Tester", service.CreateTransferRequest{
		ProductSKU: "OFF-001", ProductName: "Office Paper A4", Quantity: 10,
		FromWarehouse: "main-warehouse", ToWarehouse: "west-coast-hub",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TransferStatusPending, got.Status)
	assert.Equal(t, "Tester", got.RequestedBy)
}

func TestTransferLifecycle(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewWarehouseService(s, audit, hub)
	ctx := context.Background()

	transfer, err := svc.CreateTransfer(ctx, "u1", "Tester", service.CreateTransferRequest{
		ProductSKU: "ELE-045", ProductName: "USB Cable Type-C", Quantity: 5,
		FromWarehouse: "main-warehouse", ToWarehouse: "distribution-center",
	})
	require.NoError(t, err)
	id := transfer.ID.String()

	inTransit, err := svc.SetTransferStatus(ctx, "u1", "Tester", id, service.SetTransferStatusRequest{Status: model.TransferStatusInTransit})
	require.NoError(t, err)
	assert.Equal(t, model.TransferStatusInTransit, inTransit.Status)
	assert.Nil(t, inTransit.CompletedAt)

	completed, err := svc.SetTransferStatus(ctx, "u1", "Tester", id, service.SetTransferStatusRequest{Status: model.TransferStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, model.TransferStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	_, err = svc.SetTransferStatus(ctx, "u1", "Tester", id, service.SetTransferStatusRequest{Status: model.TransferStatusPending})
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestCreateLocation(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewWarehouseService(s, audit, hub)
	ctx := context.Background()

	_, err := svc.CreateLocation(ctx, "u1", "Tester", "main-warehouse", service.CreateLocationRequest{
		Rack: "B2", Shelf: "S1", Bin: "B4", Capacity: 50, Occupied: 60,
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	loc, err := svc.CreateLocation(ctx, "u1", "Tester", "main-warehouse", service.CreateLocationRequest{
		Rack: "B2", Shelf: "S1", Bin: "B4", Capacity: 50, Occupied: 46,
	})
	require.NoError(t, err)
	assert.Equal(t, "B2-S1-B4", loc.Code)
	assert.Equal(t, model.UtilizationCritical, loc.Utilization)
}

func TestDeleteWarehouseRemovesLocations(t *testing.T) {
	s, audit, hub := newFixture(t)
	svc := service.NewWarehouseService(s, audit, hub)
	ctx := context.Background()

	locs, err := svc.ListLocations(ctx, "main-warehouse")
	require.NoError(t, err)
	require.NotEmpty(t, locs)

	require.NoError(t, svc.DeleteWarehouse(ctx, "u1", "Tester", "main-warehouse"))

	_, err = svc.GetWarehouse(ctx, "main-warehouse")
	assert.ErrorIs(t, err, service.ErrNotFound)
	remaining := s.Locations.Filter(func(l model.Location) bool { return l.WarehouseID == "main-warehouse" })
	assert.Empty(t, remaining)
}
