package model

// Role enum constants
const (
	RoleAdministrator = "Administrator"
	RoleManager       = "Manager"
	RoleStaff         = "Staff"
	RoleAuditor       = "Auditor"
)

// Capability codes, grouped by module. Route guards check these instead of
// comparing role strings inline.
const (
	CapProductsRead     = "products.read"
	CapProductsWrite    = "products.write"
	CapInventoryRead    = "inventory.read"
	CapInventoryAdjust  = "inventory.adjust"
	CapWarehousesRead   = "warehouses.read"
	CapWarehousesWrite  = "warehouses.write"
	CapOrdersRead       = "orders.read"
	CapOrdersWrite      = "orders.write"
	CapProcurementRead  = "procurement.read"
	CapProcurementWrite = "procurement.write"
	CapPOApprove        = "procurement.approve"
	CapSalesRead        = "sales.read"
	CapSalesWrite       = "sales.write"
	CapPartnersRead     = "partners.read"
	CapPartnersWrite    = "partners.write"
	CapAnalyticsRead    = "analytics.read"
	CapUsersManage      = "users.manage"
	CapSettingsRead     = "settings.read"
	CapSettingsWrite    = "settings.write"
	CapAuditRead        = "audit.read"
)

var readOnlyCaps = []string{
	CapProductsRead, CapInventoryRead, CapWarehousesRead, CapOrdersRead,
	CapProcurementRead, CapSalesRead, CapPartnersRead, CapAnalyticsRead,
	CapSettingsRead, CapAuditRead,
}

// roleCapabilities is the authoritative role → capability table. Administrator
// is handled as a wildcard in HasCapability, so it is not listed here.
var roleCapabilities = map[string][]string{
	RoleManager: append([]string{
		CapProductsWrite, CapInventoryAdjust, CapWarehousesWrite, CapOrdersWrite,
		CapProcurementWrite, CapPOApprove, CapSalesWrite, CapPartnersWrite,
	}, readOnlyCaps...),
	RoleStaff: append([]string{
		CapSalesWrite, CapOrdersWrite,
	}, readOnlyCaps...),
	RoleAuditor: readOnlyCaps,
}

// ValidRole reports whether role is one of the four dashboard roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdministrator, RoleManager, RoleStaff, RoleAuditor:
		return true
	}
	return false
}

// HasCapability reports whether the role is granted the capability.
// Administrators always pass.
func HasCapability(role, capability string) bool {
	if role == RoleAdministrator {
		return true
	}
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// CapabilitiesForRole returns the capability set for a role; used by the /me
// endpoint so the frontend can hide controls the user cannot trigger.
func CapabilitiesForRole(role string) []string {
	if role == RoleAdministrator {
		all := make([]string, 0, len(readOnlyCaps)+12)
		all = append(all, roleCapabilities[RoleManager]...)
		all = append(all, CapUsersManage, CapSettingsWrite)
		return all
	}
	caps := roleCapabilities[role]
	out := make([]string, len(caps))
	copy(out, caps)
	return out
}
