package mapper

import (
	"github.com/pcgops/cscrm_end/models"
)

// DocumentationActivityFromRow 把documentation_activities表行转换为视图模型
func DocumentationActivityFromRow(row Row) models.DocumentationActivity {
	a := models.DocumentationActivity{
		ID:             getString(row, "id"),
		ProductType:    getString(row, "product_type"),
		TeamMemberID:   getString(row, "team_member_id"),
		ActivityDate:   getString(row, "activity_date"),
		Description:    getString(row, "description"),
		IsDone:         getBool(row, "is_done"),
		NextActionDate: getString(row, "next_action_date"),
	}
	if origin := getString(row, "origin"); origin != "" {
		a.Origin = models.ActivityOrigin(origin)
	} else {
		a.Origin = models.ClassifyNativeID(a.ID)
	}
	return a
}

// DocumentationActivityToRow 文档活动写库形态
func DocumentationActivityToRow(a models.DocumentationActivity) Row {
	return Row{
		"product_type":     a.ProductType,
		"team_member_id":   nullifyEmpty(a.TeamMemberID),
		"activity_date":    a.ActivityDate,
		"description":      a.Description,
		"is_done":          a.IsDone,
		"next_action_date": nullifyEmpty(a.NextActionDate),
		"origin":           string(a.Origin),
	}
}

// SchedulerActivityFromRow 把scheduler_activities表行转换为视图模型
func SchedulerActivityFromRow(row Row) models.SchedulerActivity {
	a := models.SchedulerActivity{
		ID:          getString(row, "id"),
		Title:       getString(row, "title"),
		Description: getString(row, "description"),
		DueDate:     getString(row, "due_date"),
		SourceID:    getString(row, "source_id"),
		IsDone:      getBool(row, "is_done"),
	}
	if origin := getString(row, "origin"); origin != "" {
		a.Origin = models.ActivityOrigin(origin)
	} else {
		a.Origin = models.ClassifyNativeID(a.ID)
	}
	return a
}

// SchedulerActivityToRow 调度提醒写库形态
func SchedulerActivityToRow(a models.SchedulerActivity) Row {
	return Row{
		"title":       a.Title,
		"description": a.Description,
		"due_date":    a.DueDate,
		"source_id":   a.SourceID,
		"is_done":     a.IsDone,
		"origin":      string(a.Origin),
	}
}
