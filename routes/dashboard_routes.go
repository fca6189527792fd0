package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/controllers"
	"github.com/pcgops/cscrm_end/middleware"
)

func RegisterDashboardRoutes(router *gin.Engine, dc *controllers.DashboardController) {
	dashboardGroup := router.Group("/api/dashboard")
	dashboardGroup.Use(middleware.AuthMiddleware())

	// 统计数据
	dashboardGroup.GET("/stats", dc.Stats)
}
