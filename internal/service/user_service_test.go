package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventorypro/internal/model"
	"inventorypro/internal/service"
)

func TestLogin(t *testing.T) {
	s, audit, _ := newFixture(t)
	svc := service.NewUserService(s, audit, time.Hour)
	ctx := context.Background()

	got, err := svc.Login(ctx, service.LoginRequest{Email: "admin@inventorypro.com", Password: "inventory123"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Token)
	assert.Equal(t, model.RoleAdministrator, got.User.Role)

	_, err = svc.Login(ctx, service.LoginRequest{Email: "admin@inventorypro.com", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = svc.Login(ctx, service.LoginRequest{Email: "nobody@inventorypro.com", Password: "inventory123"})
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s, audit, _ := newFixture(t)
	svc := service.NewUserService(s, audit, time.Hour)

	_, err := svc.Create(context.Background(), "u1", "Tester", service.CreateUserRequest{
		Name: "Dup", Email: "Admin@InventoryPro.com", Password: "supersecret", Role: model.RoleStaff,
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestDeleteUserRejectsSelf(t *testing.T) {
	s, audit, _ := newFixture(t)
	svc := service.NewUserService(s, audit, time.Hour)

	admin, err := s.Users.Find(func(u model.User) bool { return u.Role == model.RoleAdministrator })
	require.NoError(t, err)
	id := admin.ID.String()

	err = svc.Delete(context.Background(), id, admin.Name, id)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestMeIncludesCapabilities(t *testing.T) {
	s, audit, _ := newFixture(t)
	svc := service.NewUserService(s, audit, time.Hour)

	auditor, err := s.Users.Find(func(u model.User) bool { return u.Role == model.RoleAuditor })
	require.NoError(t, err)

	me, err := svc.Me(context.Background(), auditor.ID.String())
	require.NoError(t, err)
	assert.Contains(t, me.Capabilities, model.CapAuditRead)
	assert.NotContains(t, me.Capabilities, model.CapInventoryAdjust)
}
