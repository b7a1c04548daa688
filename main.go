package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booking-relay/config"
	"booking-relay/middleware"
	"booking-relay/routes"
	"booking-relay/service"
	"booking-relay/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 加载.env文件，不存在时使用系统环境变量
	_ = godotenv.Load()

	// 初始化日志
	utils.InitLogger()

	// 加载配置
	cfg := config.LoadConfig()

	// 设置Gin模式
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建CRM客户端
	crm := service.NewCRMClient(cfg)

	// 创建Gin实例
	router := gin.New()

	// 应用中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	// 注册路由
	routes.RegisterRoutes(router, crm, cfg)

	utils.LogInfo(map[string]interface{}{
		"crmBaseUrl": cfg.CRMBaseURL,
		"locationId": cfg.CRMLocationID,
		"pipelineId": cfg.SalesPipelineID,
	}, "Webhook中继服务初始化完成")

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
