package routes

import (
	"github.com/gin-gonic/gin"

	"booking-relay/config"
	"booking-relay/controllers"
	"booking-relay/service"
)

// RegisterWebhookRoutes 注册Webhook相关路由
func RegisterWebhookRoutes(router *gin.Engine, crm *service.CRMClient, cfg *config.Config) {
	webhookGroup := router.Group("/webhook")

	// Calendly预约事件
	webhookGroup.POST("/calendly", controllers.CalendlyWebhookHandler(crm))

	// Typeform问卷提交事件
	webhookGroup.POST("/typeform", controllers.TypeformWebhookHandler(crm, cfg))
}
