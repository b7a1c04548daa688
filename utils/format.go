package utils

import (
	"encoding/json"
	"strconv"
	"strings"

	"booking-relay/models"
)

// ExtractEmail 提取问卷中第一个邮箱类型的回答
func ExtractEmail(fr *models.FormResponse) string {
	for _, answer := range fr.Answers {
		if answer.Type == "email" && answer.Email != "" {
			return answer.Email
		}
	}
	return ""
}

// FormatAnswers 将问卷回答格式化为 "标题: 值" 的多行文本
// 标题取字段定义，找不到时退回字段ID
func FormatAnswers(fr *models.FormResponse) string {
	titles := make(map[string]string, len(fr.Definition.Fields))
	for _, field := range fr.Definition.Fields {
		titles[field.ID] = field.Title
	}

	lines := make([]string, 0, len(fr.Answers))
	for _, answer := range fr.Answers {
		title := titles[answer.Field.ID]
		if title == "" {
			title = answer.Field.ID
		}
		lines = append(lines, title+": "+renderAnswer(answer))
	}
	return strings.Join(lines, "\n")
}

// renderAnswer 按回答类型渲染为文本
func renderAnswer(answer models.FormAnswer) string {
	switch answer.Type {
	case "choice":
		if answer.Choice != nil {
			return answer.Choice.Label
		}
		return ""
	case "boolean":
		if answer.Boolean != nil && *answer.Boolean {
			return "Oui"
		}
		return "Non"
	case "email":
		return answer.Email
	case "phone_number":
		return answer.PhoneNumber
	case "text":
		return answer.Text
	case "number":
		if answer.Number != nil {
			return strconv.FormatFloat(*answer.Number, 'f', -1, 64)
		}
		return ""
	default:
		// 未知类型，序列化整条回答
		raw, err := json.Marshal(answer)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
