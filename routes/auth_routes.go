package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/controllers"
	"github.com/pcgops/cscrm_end/middleware"
)

func RegisterAuthRoutes(router *gin.Engine, ac *controllers.AuthController) {
	authGroup := router.Group("/api/auth")

	// 登录
	authGroup.POST("/login", ac.Login)

	// 需要认证的接口
	protected := authGroup.Group("")
	protected.Use(middleware.AuthMiddleware())

	// 登出
	protected.POST("/logout", ac.Logout)

	// 校验token
	protected.GET("/validate", ac.Validate)

	// 当前用户
	protected.GET("/me", ac.Me)
}
