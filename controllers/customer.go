package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/store"
	"github.com/pcgops/cscrm_end/utils"
)

// CustomerController 客户相关接口
type CustomerController struct {
	store *store.Store
}

// NewCustomerController 创建客户控制器
func NewCustomerController(s *store.Store) *CustomerController {
	return &CustomerController{store: s}
}

// List 获取客户列表，支持按公司名/联系人关键字过滤与状态过滤
func (cc *CustomerController) List(c *gin.Context) {
	customers := cc.store.Customers()

	keyword := strings.ToLower(c.Query("keyword"))
	status := c.Query("status")

	if keyword != "" || status != "" {
		filtered := make([]models.Customer, 0, len(customers))
		for _, cust := range customers {
			if status != "" && string(cust.Status) != status {
				continue
			}
			if keyword != "" &&
				!strings.Contains(strings.ToLower(cust.Company), keyword) &&
				!strings.Contains(strings.ToLower(cust.Name), keyword) {
				continue
			}
			filtered = append(filtered, cust)
		}
		customers = filtered
	}

	utils.LogInfo(map[string]interface{}{
		"count":   len(customers),
		"keyword": keyword,
		"status":  status,
	}, "客户列表请求")

	utils.SuccessResponse(c, gin.H{"customers": customers, "total": len(customers)}, "")
}

// Get 获取单个客户
func (cc *CustomerController) Get(c *gin.Context) {
	customer, ok := cc.store.GetCustomer(c.Param("id"))
	if !ok {
		utils.HandleError(c, utils.CreateNotFoundError("客户"))
		return
	}
	utils.SuccessResponse(c, gin.H{"customer": customer}, "")
}

// Create 新建客户
func (cc *CustomerController) Create(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	if customer.Company == "" {
		utils.HandleError(c, utils.CreateBadRequestError("公司名称不能为空"))
		return
	}

	created, localOnly, err := cc.store.AddCustomer(c.Request.Context(), customer)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, gin.H{"customer": created})
		return
	}
	utils.SuccessResponse(c, gin.H{"customer": created}, "客户创建成功", http.StatusCreated)
}

// Update 更新客户（整记录替换）
func (cc *CustomerController) Update(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}
	customer.ID = c.Param("id")

	updated, localOnly, err := cc.store.UpdateCustomer(c.Request.Context(), customer)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, gin.H{"customer": updated})
		return
	}
	utils.SuccessResponse(c, gin.H{"customer": updated}, "客户更新成功")
}

// Export 客户数据CSV导出
func (cc *CustomerController) Export(c *gin.Context) {
	customers := cc.store.Customers()

	filename := fmt.Sprintf("customers_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	header := []string{
		"公司名称", "联系人", "邮箱", "电话", "状态", "ARR",
		"签约日期", "满意度", "许可产品", "活动数",
	}
	if err := writer.Write(header); err != nil {
		utils.LogError(err, nil, "写入CSV表头失败")
		return
	}

	for _, cust := range customers {
		record := []string{
			cust.Company,
			cust.Name,
			cust.Email,
			cust.Phone,
			string(cust.Status),
			cust.ARR,
			cust.SignedDate,
			fmt.Sprintf("%d", cust.Satisfaction),
			strings.Join(cust.LicensedProducts, "; "),
			fmt.Sprintf("%d", len(cust.ActivityLog)),
		}
		if err := writer.Write(record); err != nil {
			utils.LogError(err, map[string]interface{}{"company": cust.Company}, "写入CSV行失败")
			return
		}
	}

	utils.LogInfo(map[string]interface{}{"count": len(customers)}, "客户数据导出完成")
}
