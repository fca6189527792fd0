package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/controllers"
	"github.com/pcgops/cscrm_end/middleware"
	"github.com/pcgops/cscrm_end/models"
)

func RegisterProductRoutes(router *gin.Engine, pc *controllers.ProductController) {
	productGroup := router.Group("/api/products")
	productGroup.Use(middleware.AuthMiddleware())

	// 获取产品列表
	productGroup.GET("", pc.List)

	// 创建产品
	productGroup.POST("", middleware.CapabilityMiddleware(models.CapManageProducts), pc.Create)

	// 删除产品
	productGroup.DELETE("/:name", middleware.CapabilityMiddleware(models.CapManageProducts), pc.Delete)
}
