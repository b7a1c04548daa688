package models

// TypeformWebhookEvent Typeform推送的事件
type TypeformWebhookEvent struct {
	EventID      string        `json:"event_id"`
	EventType    string        `json:"event_type"`
	FormResponse *FormResponse `json:"form_response"`
}

// FormResponse 一次问卷提交
type FormResponse struct {
	FormID     string         `json:"form_id"`
	Definition FormDefinition `json:"definition"`
	Answers    []FormAnswer   `json:"answers"`
}

// FormDefinition 问卷字段定义
type FormDefinition struct {
	Fields []FormField `json:"fields"`
}

// FormField 问卷字段
type FormField struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Ref   string `json:"ref"`
}

// FormAnswer 单条回答，按type取对应的值字段
type FormAnswer struct {
	Type        string       `json:"type"`
	Field       FormFieldRef `json:"field"`
	Text        string       `json:"text,omitempty"`
	Email       string       `json:"email,omitempty"`
	PhoneNumber string       `json:"phone_number,omitempty"`
	Boolean     *bool        `json:"boolean,omitempty"`
	Number      *float64     `json:"number,omitempty"`
	Choice      *FormChoice  `json:"choice,omitempty"`
}

// FormFieldRef 回答对字段定义的引用
type FormFieldRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Ref  string `json:"ref"`
}

// FormChoice 单选回答
type FormChoice struct {
	Label string `json:"label"`
}
