package mapper

import (
	"github.com/pcgops/cscrm_end/models"
)

// ProfileFromRow 把profiles表行转换为用户档案。
// 历史数据只有标量role列，读取时归一化为单元素角色集合
func ProfileFromRow(row Row) models.UserProfile {
	p := models.UserProfile{
		ID:        getString(row, "id"),
		FirstName: getString(row, "first_name"),
		LastName:  getString(row, "last_name"),
		Email:     getString(row, "email"),
	}

	p.Roles = getStringSlice(row, "roles")
	if len(p.Roles) == 0 {
		if legacy := getString(row, "role"); legacy != "" {
			p.Roles = []string{legacy}
		} else {
			p.Roles = []string{models.RoleViewer}
		}
	}

	return p
}

// ProfileToRow 把用户档案转换为profiles表行
func ProfileToRow(p models.UserProfile) Row {
	roles := p.Roles
	if len(roles) == 0 {
		roles = []string{models.RoleViewer}
	}
	return Row{
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"email":      p.Email,
		"roles":      roles,
	}
}
