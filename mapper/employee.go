package mapper

import (
	"github.com/pcgops/cscrm_end/models"
)

// EmployeeFromRow 把employees表行转换为视图模型
func EmployeeFromRow(row Row) models.Employee {
	return models.Employee{
		ID:        getString(row, "id"),
		FirstName: getString(row, "first_name"),
		LastName:  getString(row, "last_name"),
		Email:     getString(row, "email"),
		Role:      getString(row, "role"),
		Location:  getString(row, "location"),
		Bio:       getString(row, "bio"),
		Title:     getString(row, "title"),

		CertBasicAppBuilder:    getBool(row, "cert_basic_app_builder"),
		CertAdvancedAppBuilder: getBool(row, "cert_advanced_app_builder"),
		CertSolutionLead:       getBool(row, "cert_solution_lead"),
		CertAdoptionManager:    getBool(row, "cert_adoption_manager"),
		CertSales:              getBool(row, "cert_sales"),
		CertGxP:                getBool(row, "cert_gxp"),
		CertAiOps:              getBool(row, "cert_ai_ops"),
		CertTulipCertified:     getBool(row, "cert_tulip_certified"),
	}
}

// EmployeeToRow 把员工视图模型转换为employees表行
func EmployeeToRow(e models.Employee) Row {
	return Row{
		"first_name": e.FirstName,
		"last_name":  e.LastName,
		"email":      e.Email,
		"role":       e.Role,
		"location":   e.Location,
		"bio":        e.Bio,
		"title":      e.Title,

		"cert_basic_app_builder":    e.CertBasicAppBuilder,
		"cert_advanced_app_builder": e.CertAdvancedAppBuilder,
		"cert_solution_lead":        e.CertSolutionLead,
		"cert_adoption_manager":     e.CertAdoptionManager,
		"cert_sales":                e.CertSales,
		"cert_gxp":                  e.CertGxP,
		"cert_ai_ops":               e.CertAiOps,
		"cert_tulip_certified":      e.CertTulipCertified,
	}
}
