package routes

import (
	"github.com/gin-gonic/gin"

	"booking-relay/config"
	"booking-relay/service"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, crm *service.CRMClient, cfg *config.Config) {
	RegisterWebhookRoutes(router, crm, cfg)
	RegisterHealthRoutes(router)
}
