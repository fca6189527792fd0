package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/store"
	"github.com/pcgops/cscrm_end/utils"
)

// LeadController 线索相关接口
type LeadController struct {
	store *store.Store
}

// NewLeadController 创建线索控制器
func NewLeadController(s *store.Store) *LeadController {
	return &LeadController{store: s}
}

// List 获取线索列表，支持按公司名/联系人关键字与状态过滤
func (lc *LeadController) List(c *gin.Context) {
	leads := lc.store.Leads()

	keyword := strings.ToLower(c.Query("keyword"))
	status := c.Query("status")

	if keyword != "" || status != "" {
		filtered := make([]models.Lead, 0, len(leads))
		for _, l := range leads {
			if status != "" && l.Status != status {
				continue
			}
			if keyword != "" &&
				!strings.Contains(strings.ToLower(l.CompanyName), keyword) &&
				!strings.Contains(strings.ToLower(l.PocName), keyword) {
				continue
			}
			filtered = append(filtered, l)
		}
		leads = filtered
	}

	utils.SuccessResponse(c, gin.H{"leads": leads, "total": len(leads)}, "")
}

// Get 获取单个线索
func (lc *LeadController) Get(c *gin.Context) {
	lead, ok := lc.store.GetLead(c.Param("id"))
	if !ok {
		utils.HandleError(c, utils.CreateNotFoundError("线索"))
		return
	}
	utils.SuccessResponse(c, gin.H{"lead": lead}, "")
}

// Create 新建线索。线索是销售流水线的权威记录，
// 远端不可用时直接报错，不做本地回退
func (lc *LeadController) Create(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	if lead.CompanyName == "" {
		utils.HandleError(c, utils.CreateBadRequestError("公司名称不能为空"))
		return
	}

	created, _, err := lc.store.AddLead(c.Request.Context(), lead)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"lead": created}, "线索创建成功", http.StatusCreated)
}

// Update 更新线索，同样不做本地回退
func (lc *LeadController) Update(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}
	lead.ID = c.Param("id")

	updated, _, err := lc.store.UpdateLead(c.Request.Context(), lead)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"lead": updated}, "线索更新成功")
}

// Delete 删除线索
func (lc *LeadController) Delete(c *gin.Context) {
	localOnly, err := lc.store.RemoveLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, nil)
		return
	}
	utils.SuccessResponse(c, nil, "线索删除成功")
}
