package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/config"
	"github.com/pcgops/cscrm_end/middleware"
	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/routes"
	"github.com/pcgops/cscrm_end/service"
	"github.com/pcgops/cscrm_end/store"
	"github.com/pcgops/cscrm_end/utils"
)

func main() {
	// 初始化日志
	utils.InitLogger()

	// 加载配置
	cfg := config.LoadConfig()

	// 初始化JWT
	utils.InitJWT(cfg.JWTKey)

	// 设置Gin模式
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 连接远端存储
	mongoStore, err := remote.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("连接远端存储失败")
	}
	defer mongoStore.Close()

	// 初始化系统数据
	utils.Logger.Info().Msg("开始系统初始化...")
	if err := mongoStore.InitializeTables(); err != nil {
		utils.Logger.Error().Err(err).Msg("初始化数据表失败")
	}

	auth := remote.NewAuth(mongoStore)
	if err := auth.InitializeAdminProfile(); err != nil {
		utils.Logger.Error().Err(err).Msg("初始化管理员档案失败")
	}
	utils.Logger.Info().Msg("系统初始化完成")

	// 领域数据层：启动时全量加载一次，登录事件触发重新加载
	dataStore := store.New(mongoStore)
	dataStore.Subscribe(auth)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	dataStore.FetchAll(loadCtx)
	loadCancel()

	// 启动提醒扫描任务
	reminder := service.NewReminderService(dataStore, cfg.ReminderCron)
	if err := reminder.Start(); err != nil {
		utils.Logger.Error().Err(err).Msg("启动提醒服务失败")
	}
	defer reminder.Stop()

	// 创建Gin实例
	router := gin.New()

	// 应用中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowOrigins))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.OperationLoggerMiddleware(mongoStore))

	// 注册路由
	routes.RegisterRoutes(router, routes.Deps{
		Store:  dataStore,
		Auth:   auth,
		Remote: mongoStore,
	})

	// 设置HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 启动服务器
	go func() {
		utils.Logger.Info().Msgf("服务器启动，监听端口: %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("启动服务器失败")
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal().Err(err).Msg("服务器关闭异常")
	}

	utils.Logger.Info().Msg("服务器已优雅关闭")
}
