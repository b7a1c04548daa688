package routes

import (
	"github.com/gin-gonic/gin"

	"booking-relay/controllers"
)

// RegisterHealthRoutes 注册健康检查路由
func RegisterHealthRoutes(router *gin.Engine) {
	router.GET("/health", controllers.HealthHandler)
}
