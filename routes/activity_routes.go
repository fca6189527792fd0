package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/controllers"
	"github.com/pcgops/cscrm_end/middleware"
	"github.com/pcgops/cscrm_end/models"
)

func RegisterActivityRoutes(router *gin.Engine, ac *controllers.ActivityController) {
	activityGroup := router.Group("/api/activities")
	activityGroup.Use(middleware.AuthMiddleware())

	// 聚合活动流
	activityGroup.GET("", ac.Feed)

	// 新建活动
	activityGroup.POST("", middleware.CapabilityMiddleware(models.CapLogActivity), ac.Create)

	// 编辑活动
	activityGroup.PUT("/:id", middleware.CapabilityMiddleware(models.CapLogActivity), ac.Update)

	// 删除活动
	activityGroup.DELETE("/:id", middleware.CapabilityMiddleware(models.CapLogActivity), ac.Delete)

	// 翻转完成标记
	activityGroup.PATCH("/:id/toggle", middleware.CapabilityMiddleware(models.CapLogActivity), ac.Toggle)
}
