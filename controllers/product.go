package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/store"
	"github.com/pcgops/cscrm_end/utils"
)

// ProductRequest 产品条目请求
type ProductRequest struct {
	Name string `json:"name" binding:"required"`
}

// ProductController 产品目录接口。产品是扁平的名称列表，
// 供客户许可产品与文档活动选择
type ProductController struct {
	store *store.Store
}

// NewProductController 创建产品控制器
func NewProductController(s *store.Store) *ProductController {
	return &ProductController{store: s}
}

// List 获取产品列表
func (pc *ProductController) List(c *gin.Context) {
	products := pc.store.Products()
	utils.SuccessResponse(c, gin.H{"products": products, "total": len(products)}, "")
}

// Create 新增产品
func (pc *ProductController) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	localOnly, err := pc.store.AddProduct(c.Request.Context(), req.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, gin.H{"name": req.Name})
		return
	}
	utils.SuccessResponse(c, gin.H{"name": req.Name}, "产品创建成功", http.StatusCreated)
}

// Delete 按名称删除产品
func (pc *ProductController) Delete(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		utils.HandleError(c, utils.CreateBadRequestError("产品名称不能为空"))
		return
	}

	localOnly, err := pc.store.RemoveProduct(c.Request.Context(), name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, nil)
		return
	}
	utils.SuccessResponse(c, nil, "产品删除成功")
}
