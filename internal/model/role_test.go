package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCapability(t *testing.T) {
	// Administrator passes everything, including capabilities no table lists
	assert.True(t, HasCapability(RoleAdministrator, CapUsersManage))
	assert.True(t, HasCapability(RoleAdministrator, CapSettingsWrite))

	// Manager writes across business modules but cannot manage users
	assert.True(t, HasCapability(RoleManager, CapPOApprove))
	assert.True(t, HasCapability(RoleManager, CapInventoryAdjust))
	assert.False(t, HasCapability(RoleManager, CapUsersManage))
	assert.False(t, HasCapability(RoleManager, CapSettingsWrite))

	// Staff handles sales and fulfillment only
	assert.True(t, HasCapability(RoleStaff, CapSalesWrite))
	assert.True(t, HasCapability(RoleStaff, CapOrdersWrite))
	assert.False(t, HasCapability(RoleStaff, CapPOApprove))
	assert.False(t, HasCapability(RoleStaff, CapInventoryAdjust))

	// Auditor reads everything, writes nothing
	assert.True(t, HasCapability(RoleAuditor, CapAuditRead))
	assert.True(t, HasCapability(RoleAuditor, CapSalesRead))
	assert.False(t, HasCapability(RoleAuditor, CapSalesWrite))

	// Unknown roles get nothing
	assert.False(t, HasCapability("Intern", CapProductsRead))
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdministrator, RoleManager, RoleStaff, RoleAuditor} {
		assert.True(t, ValidRole(role))
	}
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}

func TestCapabilitiesForRole(t *testing.T) {
	caps := CapabilitiesForRole(RoleAdministrator)
	assert.Contains(t, caps, CapUsersManage)
	assert.Contains(t, caps, CapSettingsWrite)

	auditor := CapabilitiesForRole(RoleAuditor)
	assert.Contains(t, auditor, CapInventoryRead)
	assert.NotContains(t, auditor, CapInventoryAdjust)
}
