package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/store"
	"github.com/pcgops/cscrm_end/utils"
)

// EditActivityRequest 编辑活动请求
type EditActivityRequest struct {
	Details        string `json:"details"`
	NextActionDate string `json:"nextActionDate"`
}

// ActivityController 统一活动流接口。所有变更走合成ID路由，
// 前缀决定活动落在哪个底层集合
type ActivityController struct {
	store *store.Store
}

// NewActivityController 创建活动控制器
func NewActivityController(s *store.Store) *ActivityController {
	return &ActivityController{store: s}
}

// Feed 获取聚合后的活动流（时间倒序），支持按类型与关联实体过滤
func (ac *ActivityController) Feed(c *gin.Context) {
	items := ac.store.Feed()

	activityType := c.Query("type")
	entityID := c.Query("entityId")
	if activityType != "" || entityID != "" {
		filtered := items[:0:0]
		for _, item := range items {
			if activityType != "" && string(item.Type) != activityType {
				continue
			}
			if entityID != "" &&
				item.CustomerID != entityID && item.LeadID != entityID && item.EmployeeID != entityID {
				continue
			}
			filtered = append(filtered, item)
		}
		items = filtered
	}

	utils.SuccessResponse(c, gin.H{"activities": items, "total": len(items)}, "")
}

// Create 新建活动
func (ac *ActivityController) Create(c *gin.Context) {
	var in store.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	if in.AuthorName == "" {
		if user, err := utils.GetUser(c); err == nil {
			in.AuthorName = user.FirstName + " " + user.LastName
		}
	}

	id, localOnly, err := ac.store.AddActivity(c.Request.Context(), in)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, gin.H{"id": id})
		return
	}
	utils.SuccessResponse(c, gin.H{"id": id}, "活动创建成功", http.StatusCreated)
}

// Update 依据合成ID编辑活动
func (ac *ActivityController) Update(c *gin.Context) {
	var req EditActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	localOnly, err := ac.store.EditActivity(c.Request.Context(), c.Param("id"), req.Details, req.NextActionDate)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, nil)
		return
	}
	utils.SuccessResponse(c, nil, "活动更新成功")
}

// Delete 依据合成ID删除活动
func (ac *ActivityController) Delete(c *gin.Context) {
	localOnly, err := ac.store.DeleteActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, nil)
		return
	}
	utils.SuccessResponse(c, nil, "活动删除成功")
}

// Toggle 翻转活动的完成标记
func (ac *ActivityController) Toggle(c *gin.Context) {
	localOnly, err := ac.store.ToggleActivityDone(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, nil)
		return
	}
	utils.SuccessResponse(c, nil, "活动状态已更新")
}
