package utils

import (
	"github.com/pcgops/cscrm_end/models"
)

// 能力到所需角色的固定映射表
// 表中不存在的能力一律拒绝；角色为扁平集合，管理员之外没有层级
var capabilityRoles = map[models.Capability][]string{
	models.CapCreateLead:          {models.RoleLeadCreator},
	models.CapManageDocumentation: {models.RoleDocumentation},
	models.CapLogActivity:         {models.RoleLeadCreator, models.RoleDocumentation},
}

// HasCapability 判断用户是否具备指定能力
// 管理员始终放行；VIEW_ALL对任何已登录用户放行；其余按映射表判定
// 纯函数，可在每个请求上调用，无需缓存
func HasCapability(user *models.UserProfile, capability models.Capability) bool {
	if user == nil {
		return false
	}
	if user.HasRole(models.RoleAdmin) {
		return true
	}
	if capability == models.CapViewAll {
		return true
	}

	required, ok := capabilityRoles[capability]
	if !ok {
		return false
	}
	for _, role := range required {
		if user.HasRole(role) {
			return true
		}
	}
	return false
}
