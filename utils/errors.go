package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleError 处理未预期错误并返回500
// 上游服务不区分失败类型，统一返回错误消息
func HandleError(c *gin.Context, err error) {
	if c == nil || err == nil {
		return
	}

	// 记录错误
	errorMessage := err.Error()
	Logger.Error().Str("path", c.Request.URL.Path).Str("method", c.Request.Method).Msg("API错误: " + errorMessage)

	// 记录详细错误信息
	LogError(err, map[string]interface{}{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}, errorMessage)

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": errorMessage,
	})
}
