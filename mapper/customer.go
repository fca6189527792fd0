package mapper

import (
	"github.com/pcgops/cscrm_end/models"
)

// CustomerFromRow 把customers表行转换为视图模型，缺失字段代入默认值
func CustomerFromRow(row Row) models.Customer {
	c := models.Customer{
		ID:               getString(row, "id"),
		Company:          getString(row, "company"),
		Name:             getString(row, "name"),
		Email:            getString(row, "email"),
		Phone:            getString(row, "phone"),
		Status:           models.CustomerStatus(getString(row, "status")),
		Active:           getBool(row, "active"),
		ARR:              getString(row, "arr"),
		SignedDate:       getString(row, "signed_date"),
		Terms:            getInt(row, "terms"),
		Satisfaction:     getIntDefault(row, "satisfaction", models.DefaultSatisfaction),
		Netsuite:         getMap(row, "netsuite"),
		Tulip:            getMap(row, "tulip"),
		LicensedProducts: getStringSlice(row, "licensed_products"),
		Personalizations: getString(row, "personalizations"),

		PcgSupportPocId:         getString(row, "pcg_support_poc_id"),
		PcgImplementationLeadId: getString(row, "pcg_implementation_lead_id"),
		PcgSalesPocId:           getString(row, "pcg_sales_poc_id"),
		PcgProjectPocId:         getString(row, "pcg_project_poc_id"),
	}

	c.CustomerTeam = []models.TeamContact{}
	for _, item := range getSlice(row, "customer_team") {
		c.CustomerTeam = append(c.CustomerTeam, teamContactFromRow(subRow(item)))
	}

	c.ActivityLog = []models.CustomerLogEntry{}
	for _, item := range getSlice(row, "activity_log") {
		c.ActivityLog = append(c.ActivityLog, CustomerLogEntryFromRow(subRow(item)))
	}

	c.Attachments = fileMetasFromRow(row, "attachments")
	c.Documents = fileMetasFromRow(row, "documents")

	return c
}

// CustomerToRow 把客户视图模型转换为customers表行
func CustomerToRow(c models.Customer) Row {
	team := make([]interface{}, 0, len(c.CustomerTeam))
	for _, t := range c.CustomerTeam {
		team = append(team, teamContactToRow(t))
	}

	log := make([]interface{}, 0, len(c.ActivityLog))
	for _, entry := range c.ActivityLog {
		log = append(log, CustomerLogEntryToRow(entry))
	}

	return Row{
		"company":           c.Company,
		"name":              c.Name,
		"email":             c.Email,
		"phone":             c.Phone,
		"status":            string(c.Status),
		"active":            c.Active,
		"arr":               c.ARR,
		"signed_date":       c.SignedDate,
		"terms":             c.Terms,
		"satisfaction":      c.Satisfaction,
		"netsuite":          c.Netsuite,
		"tulip":             c.Tulip,
		"customer_team":     team,
		"activity_log":      log,
		"licensed_products": c.LicensedProducts,
		"attachments":       fileMetasToRow(c.Attachments),
		"documents":         fileMetasToRow(c.Documents),
		"personalizations":  c.Personalizations,

		"pcg_support_poc_id":         nullifyEmpty(c.PcgSupportPocId),
		"pcg_implementation_lead_id": nullifyEmpty(c.PcgImplementationLeadId),
		"pcg_sales_poc_id":           nullifyEmpty(c.PcgSalesPocId),
		"pcg_project_poc_id":         nullifyEmpty(c.PcgProjectPocId),
	}
}

// CustomerLogEntryFromRow 内嵌活动日志条目转换
func CustomerLogEntryFromRow(row Row) models.CustomerLogEntry {
	entry := models.CustomerLogEntry{
		ID:             getString(row, "id"),
		Timestamp:      getString(row, "timestamp"),
		Content:        getString(row, "content"),
		AuthorName:     getString(row, "author_name"),
		NextActionDate: getString(row, "next_action_date"),
		IsDone:         getBool(row, "is_done"),
	}
	if origin := getString(row, "origin"); origin != "" {
		entry.Origin = models.ActivityOrigin(origin)
	} else {
		entry.Origin = models.ClassifyNativeID(entry.ID)
	}
	return entry
}

// CustomerLogEntryToRow 内嵌活动日志条目写库形态
func CustomerLogEntryToRow(entry models.CustomerLogEntry) Row {
	return Row{
		"id":               entry.ID,
		"timestamp":        entry.Timestamp,
		"content":          entry.Content,
		"author_name":      entry.AuthorName,
		"next_action_date": entry.NextActionDate,
		"is_done":          entry.IsDone,
		"origin":           string(entry.Origin),
	}
}

func teamContactFromRow(row Row) models.TeamContact {
	return models.TeamContact{
		FirstName: getString(row, "first_name"),
		LastName:  getString(row, "last_name"),
		Email:     getString(row, "email"),
		Role:      getString(row, "role"),
	}
}

func teamContactToRow(t models.TeamContact) Row {
	return Row{
		"first_name": t.FirstName,
		"last_name":  t.LastName,
		"email":      t.Email,
		"role":       t.Role,
	}
}

func fileMetasFromRow(row Row, key string) []models.FileMeta {
	result := []models.FileMeta{}
	for _, item := range getSlice(row, key) {
		m := subRow(item)
		result = append(result, models.FileMeta{
			Name:       getString(m, "name"),
			Kind:       getString(m, "kind"),
			UploadedAt: getString(m, "uploaded_at"),
			Size:       int64(getInt(m, "size")),
		})
	}
	return result
}

func fileMetasToRow(metas []models.FileMeta) []interface{} {
	result := make([]interface{}, 0, len(metas))
	for _, m := range metas {
		result = append(result, Row{
			"name":        m.Name,
			"kind":        m.Kind,
			"uploaded_at": m.UploadedAt,
			"size":        m.Size,
		})
	}
	return result
}
