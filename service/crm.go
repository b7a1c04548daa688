package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"booking-relay/config"
	"booking-relay/models"
	"booking-relay/utils"
)

// apiVersion CRM接口版本头，所有调用固定使用该版本
const apiVersion = "2021-07-28"

// opportunityPageSize 销售机会查询的最大返回条数
const opportunityPageSize = 20

// CRMClient CRM接口客户端
// 每个方法对应一次HTTP调用，不做重试
type CRMClient struct {
	cfg    *config.Config
	client *http.Client
}

// NewCRMClient 创建CRM客户端
func NewCRMClient(cfg *config.Config) *CRMClient {
	return &CRMClient{
		cfg:    cfg,
		client: &http.Client{},
	}
}

// FindContactByEmail 按邮箱查找联系人
// 未找到时返回 nil, nil
func (s *CRMClient) FindContactByEmail(ctx context.Context, email string) (*models.Contact, error) {
	query := url.Values{}
	query.Set("locationId", s.cfg.CRMLocationID)
	query.Set("email", email)

	var result models.ContactSearchResponse
	if err := s.call(ctx, http.MethodGet, "/contacts/search/duplicate", query, nil, &result); err != nil {
		return nil, err
	}
	return result.Contact, nil
}

// FindContactByPhone 按手机号查找联系人
// 未找到时返回 nil, nil
func (s *CRMClient) FindContactByPhone(ctx context.Context, phone string) (*models.Contact, error) {
	query := url.Values{}
	query.Set("locationId", s.cfg.CRMLocationID)
	query.Set("number", phone)

	var result models.ContactSearchResponse
	if err := s.call(ctx, http.MethodGet, "/contacts/search/duplicate", query, nil, &result); err != nil {
		return nil, err
	}
	return result.Contact, nil
}

// FindOpportunityForContact 查找联系人名下的销售机会
// 取查询结果的第一条，没有时返回 nil, nil
func (s *CRMClient) FindOpportunityForContact(ctx context.Context, contactID string) (*models.Opportunity, error) {
	query := url.Values{}
	query.Set("location_id", s.cfg.CRMLocationID)
	query.Set("contact_id", contactID)
	query.Set("limit", fmt.Sprintf("%d", opportunityPageSize))

	var result models.OpportunitySearchResponse
	if err := s.call(ctx, http.MethodGet, "/opportunities/search", query, nil, &result); err != nil {
		return nil, err
	}
	if len(result.Opportunities) == 0 {
		return nil, nil
	}
	return &result.Opportunities[0], nil
}

// UpdateOpportunityStage 将销售机会移动到配置的销售管道和阶段
func (s *CRMClient) UpdateOpportunityStage(ctx context.Context, opportunityID string) error {
	body := models.OpportunityStageUpdate{
		PipelineID:      s.cfg.SalesPipelineID,
		PipelineStageID: s.cfg.NewBookingStageID,
	}
	return s.call(ctx, http.MethodPut, "/opportunities/"+opportunityID, nil, body, nil)
}

// UpdateContactCustomField 写入联系人的单个自定义字段
func (s *CRMClient) UpdateContactCustomField(ctx context.Context, contactID, fieldID, value string) error {
	body := models.ContactCustomFieldUpdate{
		CustomFields: []models.CustomFieldValue{
			{ID: fieldID, Value: value},
		},
	}
	return s.call(ctx, http.MethodPut, "/contacts/"+contactID, nil, body, nil)
}

// call 执行一次CRM调用并解析JSON响应
func (s *CRMClient) call(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	fullURL := s.cfg.CRMBaseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.CRMAPIKey)
	req.Header.Set("Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("CRM请求失败: %w", err)
	}
	defer resp.Body.Close()

	utils.LogCrmCall(method, fullURL, resp.StatusCode, time.Since(start))

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取CRM响应失败: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("CRM返回错误: %s %s 状态码 %d: %s", method, path, resp.StatusCode, string(responseBody))
	}

	if out != nil && len(responseBody) > 0 {
		if err := json.Unmarshal(responseBody, out); err != nil {
			return fmt.Errorf("解析CRM响应失败: %w", err)
		}
	}
	return nil
}
