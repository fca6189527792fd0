package models

// 角色标签，扁平集合，无层级
const (
	RoleAdmin         = "ADMIN"
	RoleLeadCreator   = "LEAD_CREATOR"
	RoleDocumentation = "DOCUMENTATION"
	RoleViewer        = "VIEWER"
)

// Capability 能力标签
type Capability string

const (
	CapViewAll             Capability = "VIEW_ALL"
	CapCreateLead          Capability = "CREATE_LEAD"
	CapEditLead            Capability = "EDIT_LEAD"
	CapDeleteLead          Capability = "DELETE_LEAD"
	CapManageCustomers     Capability = "MANAGE_CUSTOMERS"
	CapManageUsers         Capability = "MANAGE_USERS"
	CapManageEmployees     Capability = "MANAGE_EMPLOYEES"
	CapManageProducts      Capability = "MANAGE_PRODUCTS"
	CapManageDocumentation Capability = "MANAGE_DOCUMENTATION"
	CapLogActivity         Capability = "LOG_ACTIVITY"
	CapExportCustomers     Capability = "EXPORT_CUSTOMERS"
)
