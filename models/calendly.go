package models

import "strings"

// CalendlyInviteeCreated Calendly识别的预约创建事件类型
const CalendlyInviteeCreated = "invitee.created"

// CalendlyWebhookEvent Calendly推送的事件
type CalendlyWebhookEvent struct {
	Event   string          `json:"event"`
	Payload CalendlyInvitee `json:"payload"`
}

// CalendlyInvitee 预约人信息
type CalendlyInvitee struct {
	Email               string        `json:"email"`
	Name                string        `json:"name"`
	TextReminderNumber  string        `json:"text_reminder_number"`
	ScheduledEvent      CalendlyEvent `json:"scheduled_event"`
	QuestionsAndAnswers []CalendlyQA  `json:"questions_and_answers"`
}

// CalendlyEvent 被预约的事件
type CalendlyEvent struct {
	Name string `json:"name"`
}

// CalendlyQA 预约表单中的问答项
type CalendlyQA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
}

// Phone 返回预约人的手机号
// 优先取短信提醒号码，其次在问答项里找电话问题
func (i CalendlyInvitee) Phone() string {
	if i.TextReminderNumber != "" {
		return i.TextReminderNumber
	}
	for _, qa := range i.QuestionsAndAnswers {
		question := strings.ToLower(qa.Question)
		if strings.Contains(question, "phone") || strings.Contains(question, "téléphone") {
			return qa.Answer
		}
	}
	return ""
}
