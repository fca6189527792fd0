package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/controllers"
	"github.com/pcgops/cscrm_end/middleware"
	"github.com/pcgops/cscrm_end/models"
)

func RegisterCustomerRoutes(router *gin.Engine, cc *controllers.CustomerController) {
	customerGroup := router.Group("/api/customers")
	customerGroup.Use(middleware.AuthMiddleware())

	// 获取客户列表
	customerGroup.GET("", cc.List)

	// 客户数据导出
	customerGroup.GET("/export", middleware.CapabilityMiddleware(models.CapExportCustomers), cc.Export)

	// 获取单个客户
	customerGroup.GET("/:id", cc.Get)

	// 创建客户
	customerGroup.POST("", middleware.CapabilityMiddleware(models.CapManageCustomers), cc.Create)

	// 更新客户
	customerGroup.PUT("/:id", middleware.CapabilityMiddleware(models.CapManageCustomers), cc.Update)
}
