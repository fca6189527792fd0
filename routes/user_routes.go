package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/controllers"
	"github.com/pcgops/cscrm_end/middleware"
	"github.com/pcgops/cscrm_end/models"
)

func RegisterUserRoutes(router *gin.Engine, uc *controllers.UserController) {
	userGroup := router.Group("/api/users")
	userGroup.Use(middleware.AuthMiddleware())
	userGroup.Use(middleware.CapabilityMiddleware(models.CapManageUsers))

	// 获取用户列表
	userGroup.GET("", uc.List)

	// 创建用户
	userGroup.POST("", uc.Create)

	// 删除用户
	userGroup.DELETE("/:id", uc.Delete)
}
