package mapper

import (
	"github.com/pcgops/cscrm_end/models"
)

// LeadFromRow 把leads表行转换为视图模型，可空数值读出为自由文本
func LeadFromRow(row Row) models.Lead {
	l := models.Lead{
		ID:          getString(row, "id"),
		CompanyName: getString(row, "company_name"),
		PocName:     getString(row, "poc_name"),
		PocEmail:    getString(row, "poc_email"),

		AnnualRevenue:   formatNumeric(row["annual_revenue"]),
		UserCount:       formatNumeric(row["user_count"]),
		CurrentErp:      getString(row, "current_erp"),
		PainPoints:      getString(row, "pain_points"),
		Timeline:        getString(row, "timeline"),
		BudgetStatus:    getString(row, "budget_status"),
		DecisionProcess: getString(row, "decision_process"),
		NextStepDate:    getString(row, "next_step_date"),
		Probability:     getString(row, "probability"),
		Status:          getString(row, "status"),

		Sites:          formatNumeric(row["sites"]),
		Operators:      formatNumeric(row["operators"]),
		Shifts:         formatNumeric(row["shifts"]),
		WoPerDay:       formatNumeric(row["wo_per_day"]),
		FgItems:        formatNumeric(row["fg_items"]),
		InventoryItems: formatNumeric(row["inventory_items"]),
		StagingBins:    getString(row, "staging_bins"),
		CoMan:          getString(row, "co_man"),

		EquipmentCount:   formatNumeric(row["equipment_count"]),
		ManualStations:   formatNumeric(row["manual_stations"]),
		OpcMachines:      formatNumeric(row["opc_machines"]),
		WorkCells:        getString(row, "work_cells"),
		OldMachines:      formatNumeric(row["old_machines"]),
		HasOpcServer:     getString(row, "has_opc_server"),
		ControlsEngineer: getString(row, "controls_engineer"),
		Scada:            getString(row, "scada"),
		ScadaSystem:      getString(row, "scada_system"),
		Scales:           getString(row, "scales"),
		ScaleVendor:      getString(row, "scale_vendor"),
		OpcDirectory:     getString(row, "opc_directory"),
		DirectoryFormat:  getString(row, "directory_format"),
		Signals:          getMap(row, "signals"),

		NetsuiteEdition:    getString(row, "netsuite_edition"),
		Scheduling:         getString(row, "scheduling"),
		SchedulingSystem:   getString(row, "scheduling_system"),
		Customizations:     getString(row, "customizations"),
		CustomizationsDesc: getString(row, "customizations_desc"),
		Wms:                getString(row, "wms"),
		WmsSystem:          getString(row, "wms_system"),
		Qms:                getString(row, "qms"),
		QmsSystem:          getString(row, "qms_system"),
		Labeling:           getString(row, "labeling"),
		ZebraPrinters:      getString(row, "zebra_printers"),

		Regulatory:            getString(row, "regulatory"),
		Validation:            getString(row, "validation"),
		BatchProcess:          getString(row, "batch_process"),
		Ebr:                   getString(row, "ebr"),
		ContinuousImprovement: getString(row, "continuous_improvement"),
		CiData:                getString(row, "ci_data"),
		SetupInstructions:     getString(row, "setup_instructions"),
		SetupFormat:           getString(row, "setup_format"),
		WorkInstructions:      getString(row, "work_instructions"),
		WiFormat:              getString(row, "wi_format"),
		Downtime:              getString(row, "downtime"),
		MaterialLoss:          getString(row, "material_loss"),
		LaborCodes:            getString(row, "labor_codes"),
	}

	if l.Status == "" {
		l.Status = models.LeadStatusNew
	}
	l.Attachments = fileMetasFromRow(row, "attachments")

	return l
}

// LeadToRow 把线索视图模型转换为leads表行。
// 全部数值型指标经过清洗器：剥非数字字符，清洗后无数字写null而非0
func LeadToRow(l models.Lead) Row {
	status := l.Status
	if status == "" {
		status = models.LeadStatusNew
	}

	return Row{
		"company_name": l.CompanyName,
		"poc_name":     l.PocName,
		"poc_email":    l.PocEmail,

		"annual_revenue":   numericValue(l.AnnualRevenue),
		"user_count":       numericValue(l.UserCount),
		"current_erp":      l.CurrentErp,
		"pain_points":      l.PainPoints,
		"timeline":         l.Timeline,
		"budget_status":    l.BudgetStatus,
		"decision_process": l.DecisionProcess,
		"next_step_date":   nullifyEmpty(l.NextStepDate),
		"probability":      l.Probability,
		"status":           status,

		"sites":           numericValue(l.Sites),
		"operators":       numericValue(l.Operators),
		"shifts":          numericValue(l.Shifts),
		"wo_per_day":      numericValue(l.WoPerDay),
		"fg_items":        numericValue(l.FgItems),
		"inventory_items": numericValue(l.InventoryItems),
		"staging_bins":    l.StagingBins,
		"co_man":          l.CoMan,

		"equipment_count":   numericValue(l.EquipmentCount),
		"manual_stations":   numericValue(l.ManualStations),
		"opc_machines":      numericValue(l.OpcMachines),
		"work_cells":        l.WorkCells,
		"old_machines":      numericValue(l.OldMachines),
		"has_opc_server":    l.HasOpcServer,
		"controls_engineer": l.ControlsEngineer,
		"scada":             l.Scada,
		"scada_system":      l.ScadaSystem,
		"scales":            l.Scales,
		"scale_vendor":      l.ScaleVendor,
		"opc_directory":     l.OpcDirectory,
		"directory_format":  l.DirectoryFormat,
		"signals":           l.Signals,

		"netsuite_edition":    l.NetsuiteEdition,
		"scheduling":          l.Scheduling,
		"scheduling_system":   l.SchedulingSystem,
		"customizations":      l.Customizations,
		"customizations_desc": l.CustomizationsDesc,
		"wms":                 l.Wms,
		"wms_system":          l.WmsSystem,
		"qms":                 l.Qms,
		"qms_system":          l.QmsSystem,
		"labeling":            l.Labeling,
		"zebra_printers":      l.ZebraPrinters,

		"regulatory":             l.Regulatory,
		"validation":             l.Validation,
		"batch_process":          l.BatchProcess,
		"ebr":                    l.Ebr,
		"continuous_improvement": l.ContinuousImprovement,
		"ci_data":                l.CiData,
		"setup_instructions":     l.SetupInstructions,
		"setup_format":           l.SetupFormat,
		"work_instructions":      l.WorkInstructions,
		"wi_format":              l.WiFormat,
		"downtime":               l.Downtime,
		"material_loss":          l.MaterialLoss,
		"labor_codes":            l.LaborCodes,

		"attachments": fileMetasToRow(l.Attachments),
	}
}
