package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/controllers"
	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/store"
	"github.com/pcgops/cscrm_end/utils"
)

// Deps 路由依赖
type Deps struct {
	Store  *store.Store
	Auth   remote.Auth
	Remote *remote.MongoStore
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, deps Deps) {
	// 注册认证路由
	RegisterAuthRoutes(router, controllers.NewAuthController(deps.Auth))

	// 注册用户管理路由
	RegisterUserRoutes(router, controllers.NewUserController(deps.Store))

	// 注册其他路由
	RegisterCustomerRoutes(router, controllers.NewCustomerController(deps.Store))
	RegisterLeadRoutes(router, controllers.NewLeadController(deps.Store))
	RegisterEmployeeRoutes(router, controllers.NewEmployeeController(deps.Store))
	RegisterProductRoutes(router, controllers.NewProductController(deps.Store))
	RegisterActivityRoutes(router, controllers.NewActivityController(deps.Store))
	RegisterDashboardRoutes(router, controllers.NewDashboardController(deps.Store))

	// 健康检查路由
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 数据库状态检查路由
	router.GET("/api/db-status", func(c *gin.Context) {
		status, err := deps.Remote.Status()
		if err != nil {
			utils.ErrorResponse(c, "获取数据库状态失败: "+err.Error(), 500)
			return
		}
		c.JSON(200, status)
	})
}
