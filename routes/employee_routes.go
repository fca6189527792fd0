package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/controllers"
	"github.com/pcgops/cscrm_end/middleware"
	"github.com/pcgops/cscrm_end/models"
)

func RegisterEmployeeRoutes(router *gin.Engine, ec *controllers.EmployeeController) {
	employeeGroup := router.Group("/api/employees")
	employeeGroup.Use(middleware.AuthMiddleware())

	// 获取员工列表
	employeeGroup.GET("", ec.List)

	// 获取单个员工
	employeeGroup.GET("/:id", ec.Get)

	// 创建员工
	employeeGroup.POST("", middleware.CapabilityMiddleware(models.CapManageEmployees), ec.Create)

	// 更新员工
	employeeGroup.PUT("/:id", middleware.CapabilityMiddleware(models.CapManageEmployees), ec.Update)

	// 删除员工
	employeeGroup.DELETE("/:id", middleware.CapabilityMiddleware(models.CapManageEmployees), ec.Delete)
}
