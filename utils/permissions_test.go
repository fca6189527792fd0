package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcgops/cscrm_end/models"
)

func TestHasCapabilityNilUserDenied(t *testing.T) {
	require.False(t, HasCapability(nil, models.CapViewAll))
	require.False(t, HasCapability(nil, models.CapCreateLead))
}

func TestHasCapabilityAdminAllowsEverything(t *testing.T) {
	admin := &models.UserProfile{ID: "u1", Roles: []string{models.RoleAdmin}}

	caps := []models.Capability{
		models.CapViewAll, models.CapCreateLead, models.CapEditLead,
		models.CapManageCustomers, models.CapManageUsers, models.CapManageEmployees,
		models.CapManageProducts, models.CapManageDocumentation,
		models.CapLogActivity, models.CapExportCustomers,
	}
	for _, capability := range caps {
		require.True(t, HasCapability(admin, capability), "capability=%s", capability)
	}
}

func TestHasCapabilityViewAllForAnyLoggedInUser(t *testing.T) {
	viewer := &models.UserProfile{ID: "u1", Roles: []string{models.RoleViewer}}
	require.True(t, HasCapability(viewer, models.CapViewAll))

	noRoles := &models.UserProfile{ID: "u2"}
	require.True(t, HasCapability(noRoles, models.CapViewAll))
}

func TestHasCapabilityTable(t *testing.T) {
	leadCreator := &models.UserProfile{ID: "u1", Roles: []string{models.RoleLeadCreator}}
	docRole := &models.UserProfile{ID: "u2", Roles: []string{models.RoleDocumentation}}

	require.True(t, HasCapability(leadCreator, models.CapCreateLead))
	require.True(t, HasCapability(leadCreator, models.CapLogActivity))
	require.False(t, HasCapability(leadCreator, models.CapManageDocumentation))

	// 线索的编辑与删除不随创建能力放开，仅管理员可用
	require.False(t, HasCapability(leadCreator, models.CapEditLead))
	require.False(t, HasCapability(leadCreator, models.CapDeleteLead))

	require.True(t, HasCapability(docRole, models.CapManageDocumentation))
	require.True(t, HasCapability(docRole, models.CapLogActivity))
	require.False(t, HasCapability(docRole, models.CapCreateLead))
}

func TestHasCapabilityDefaultDeny(t *testing.T) {
	// 表中不存在的能力对非管理员一律拒绝
	user := &models.UserProfile{ID: "u1", Roles: []string{models.RoleLeadCreator, models.RoleDocumentation}}
	require.False(t, HasCapability(user, models.CapManageUsers))
	require.False(t, HasCapability(user, models.CapManageCustomers))
	require.False(t, HasCapability(user, models.CapEditLead))
	require.False(t, HasCapability(user, models.CapDeleteLead))
	require.False(t, HasCapability(user, models.Capability("TOTALLY_UNKNOWN")))
}

func TestHasCapabilityMonotonic(t *testing.T) {
	// 增加角色不会失去已有能力
	base := &models.UserProfile{ID: "u1", Roles: []string{models.RoleLeadCreator}}
	extended := &models.UserProfile{ID: "u1", Roles: []string{models.RoleLeadCreator, models.RoleDocumentation}}

	caps := []models.Capability{
		models.CapViewAll, models.CapCreateLead, models.CapEditLead,
		models.CapDeleteLead, models.CapLogActivity,
	}
	for _, capability := range caps {
		if HasCapability(base, capability) {
			require.True(t, HasCapability(extended, capability), "capability=%s", capability)
		}
	}
}
