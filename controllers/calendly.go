package controllers

import (
	"net/http"

	"booking-relay/models"
	"booking-relay/service"
	"booking-relay/utils"

	"github.com/gin-gonic/gin"
)

// NewBookingStageLabel 预约成功后销售机会所处阶段的展示名称
const NewBookingStageLabel = "Nouvelle réservation"

// CalendlyWebhookHandler 处理Calendly预约创建事件
// 流程: 解析事件 -> 查找联系人 -> 查找销售机会 -> 推进阶段
func CalendlyWebhookHandler(crm *service.CRMClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.CalendlyWebhookEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			utils.HandleError(c, err)
			return
		}

		// 只处理预约创建事件，其余类型直接忽略
		if event.Event != models.CalendlyInviteeCreated {
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}

		invitee := event.Payload
		phone := invitee.Phone()
		ctx := c.Request.Context()

		utils.LogInfo(map[string]interface{}{
			"email": invitee.Email,
			"name":  invitee.Name,
			"event": invitee.ScheduledEvent.Name,
		}, "收到Calendly预约事件")

		// 先按邮箱查找联系人，未命中且有手机号时再按手机号查找
		contact, err := crm.FindContactByEmail(ctx, invitee.Email)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		if contact == nil && phone != "" {
			contact, err = crm.FindContactByPhone(ctx, phone)
			if err != nil {
				utils.HandleError(c, err)
				return
			}
		}

		// 联系人不存在属于正常业务结果，不算错误
		if contact == nil {
			utils.LogInfo(map[string]interface{}{
				"email": invitee.Email,
				"phone": phone,
			}, "CRM中未找到联系人")
			c.JSON(http.StatusOK, gin.H{
				"status": "contact_not_found",
				"email":  invitee.Email,
			})
			return
		}

		// 取联系人名下第一条销售机会
		opportunity, err := crm.FindOpportunityForContact(ctx, contact.ID)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		if opportunity == nil {
			utils.LogInfo(map[string]interface{}{
				"contactId": contact.ID,
			}, "联系人名下没有销售机会")
			c.JSON(http.StatusOK, gin.H{
				"status":    "opportunity_not_found",
				"contactId": contact.ID,
			})
			return
		}

		// 推进到配置的销售管道和新预约阶段
		if err := crm.UpdateOpportunityStage(ctx, opportunity.ID); err != nil {
			utils.HandleError(c, err)
			return
		}

		utils.LogInfo(map[string]interface{}{
			"contactId":     contact.ID,
			"opportunityId": opportunity.ID,
		}, "销售机会阶段更新成功")

		c.JSON(http.StatusOK, gin.H{
			"status":        "success",
			"contactId":     contact.ID,
			"opportunityId": opportunity.ID,
			"stage":         NewBookingStageLabel,
		})
	}
}
