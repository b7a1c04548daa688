package controllers

import (
	"net/http"

	"booking-relay/config"
	"booking-relay/models"
	"booking-relay/service"
	"booking-relay/utils"

	"github.com/gin-gonic/gin"
)

// TypeformWebhookHandler 处理Typeform问卷提交事件
// 流程: 提取邮箱 -> 格式化回答 -> 查找联系人 -> 写入自定义字段
func TypeformWebhookHandler(crm *service.CRMClient, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.TypeformWebhookEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			utils.HandleError(c, err)
			return
		}

		// 没有提交内容的事件直接忽略
		if event.FormResponse == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}

		// 没有邮箱回答就无法关联联系人
		email := utils.ExtractEmail(event.FormResponse)
		if email == "" {
			utils.LogInfo(map[string]interface{}{
				"formId": event.FormResponse.FormID,
			}, "问卷中没有邮箱回答")
			c.JSON(http.StatusOK, gin.H{
				"status":  "error",
				"message": "问卷中没有邮箱回答，无法关联联系人",
			})
			return
		}

		formatted := utils.FormatAnswers(event.FormResponse)
		ctx := c.Request.Context()

		contact, err := crm.FindContactByEmail(ctx, email)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		if contact == nil {
			utils.LogInfo(map[string]interface{}{
				"email": email,
			}, "CRM中未找到联系人")
			c.JSON(http.StatusOK, gin.H{
				"status": "contact_not_found",
				"email":  email,
			})
			return
		}

		// 把格式化后的问卷内容写入配置的自定义字段
		if err := crm.UpdateContactCustomField(ctx, contact.ID, cfg.SurveyFieldID, formatted); err != nil {
			utils.HandleError(c, err)
			return
		}

		utils.LogInfo(map[string]interface{}{
			"contactId": contact.ID,
			"email":     email,
		}, "问卷内容写入联系人成功")

		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"contactId": contact.ID,
			"email":     email,
		})
	}
}
