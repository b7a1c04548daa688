package models

// Contact CRM联系人
type Contact struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Opportunity CRM销售机会
type Opportunity struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	PipelineID      string `json:"pipelineId,omitempty"`
	PipelineStageID string `json:"pipelineStageId,omitempty"`
	Status          string `json:"status,omitempty"`
}

// ContactSearchResponse 联系人去重查询响应
// 未命中时contact为null
type ContactSearchResponse struct {
	Contact *Contact `json:"contact"`
}

// OpportunitySearchResponse 销售机会查询响应
type OpportunitySearchResponse struct {
	Opportunities []Opportunity `json:"opportunities"`
}

// OpportunityStageUpdate 更新销售机会阶段的请求体
type OpportunityStageUpdate struct {
	PipelineID      string `json:"pipelineId"`
	PipelineStageID string `json:"pipelineStageId"`
}

// CustomFieldValue 自定义字段写入项
type CustomFieldValue struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// ContactCustomFieldUpdate 更新联系人自定义字段的请求体
type ContactCustomFieldUpdate struct {
	CustomFields []CustomFieldValue `json:"customFields"`
}
