package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/store"
	"github.com/pcgops/cscrm_end/utils"
)

// EmployeeController 员工与培训认证相关接口
type EmployeeController struct {
	store *store.Store
}

// NewEmployeeController 创建员工控制器
func NewEmployeeController(s *store.Store) *EmployeeController {
	return &EmployeeController{store: s}
}

// List 获取员工列表，支持按姓名关键字过滤
func (ec *EmployeeController) List(c *gin.Context) {
	employees := ec.store.Employees()

	keyword := strings.ToLower(c.Query("keyword"))
	if keyword != "" {
		filtered := make([]models.Employee, 0, len(employees))
		for _, e := range employees {
			if strings.Contains(strings.ToLower(e.FullName()), keyword) {
				filtered = append(filtered, e)
			}
		}
		employees = filtered
	}

	utils.SuccessResponse(c, gin.H{"employees": employees, "total": len(employees)}, "")
}

// Get 获取单个员工
func (ec *EmployeeController) Get(c *gin.Context) {
	employee, ok := ec.store.GetEmployee(c.Param("id"))
	if !ok {
		utils.HandleError(c, utils.CreateNotFoundError("员工"))
		return
	}
	utils.SuccessResponse(c, gin.H{"employee": employee}, "")
}

// Create 新建员工
func (ec *EmployeeController) Create(c *gin.Context) {
	var employee models.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	if employee.FirstName == "" && employee.LastName == "" {
		utils.HandleError(c, utils.CreateBadRequestError("员工姓名不能为空"))
		return
	}

	created, localOnly, err := ec.store.AddEmployee(c.Request.Context(), employee)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, gin.H{"employee": created})
		return
	}
	utils.SuccessResponse(c, gin.H{"employee": created}, "员工创建成功", http.StatusCreated)
}

// Update 更新员工（含认证矩阵的勾选变更）
func (ec *EmployeeController) Update(c *gin.Context) {
	var employee models.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}
	employee.ID = c.Param("id")

	updated, localOnly, err := ec.store.UpdateEmployee(c.Request.Context(), employee)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, gin.H{"employee": updated})
		return
	}
	utils.SuccessResponse(c, gin.H{"employee": updated}, "员工更新成功")
}

// Delete 删除员工
func (ec *EmployeeController) Delete(c *gin.Context) {
	localOnly, err := ec.store.RemoveEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, nil)
		return
	}
	utils.SuccessResponse(c, nil, "员工删除成功")
}
