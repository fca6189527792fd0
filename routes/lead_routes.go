package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/controllers"
	"github.com/pcgops/cscrm_end/middleware"
	"github.com/pcgops/cscrm_end/models"
)

func RegisterLeadRoutes(router *gin.Engine, lc *controllers.LeadController) {
	leadGroup := router.Group("/api/leads")
	leadGroup.Use(middleware.AuthMiddleware())

	// 获取线索列表
	leadGroup.GET("", lc.List)

	// 获取单个线索
	leadGroup.GET("/:id", lc.Get)

	// 创建线索
	leadGroup.POST("", middleware.CapabilityMiddleware(models.CapCreateLead), lc.Create)

	// 更新线索
	leadGroup.PUT("/:id", middleware.CapabilityMiddleware(models.CapEditLead), lc.Update)

	// 删除线索
	leadGroup.DELETE("/:id", middleware.CapabilityMiddleware(models.CapDeleteLead), lc.Delete)
}
