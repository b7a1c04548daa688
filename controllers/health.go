package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// startTime 进程启动时间
var startTime = time.Now()

// HealthHandler 健康检查
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(startTime).Seconds(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
