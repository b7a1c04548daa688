package config

import (
	"os"
	"strconv"

	"booking-relay/utils"
)

// Config 应用配置
type Config struct {
	Port int

	// CRM接口配置
	CRMAPIKey     string
	CRMBaseURL    string
	CRMLocationID string

	// 预约流程配置
	SalesPipelineID   string
	NewBookingStageID string
	SurveyFieldID     string

	Debug bool
}

// LoadConfig 从环境变量加载配置
// 缺失的必填项只记录警告，不阻止进程启动
func LoadConfig() *Config {
	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	cfg := &Config{
		Port:              port,
		CRMAPIKey:         os.Getenv("GHL_API_KEY"),
		CRMBaseURL:        getEnv("GHL_BASE_URL", "https://services.leadconnectorhq.com"),
		CRMLocationID:     os.Getenv("GHL_LOCATION_ID"),
		SalesPipelineID:   os.Getenv("GHL_SALES_PIPELINE_ID"),
		NewBookingStageID: os.Getenv("GHL_NEW_BOOKING_STAGE_ID"),
		SurveyFieldID:     os.Getenv("GHL_SURVEY_FIELD_ID"),
		Debug:             getEnv("GIN_MODE", "debug") == "debug",
	}

	required := []struct {
		name  string
		value string
	}{
		{"GHL_API_KEY", cfg.CRMAPIKey},
		{"GHL_LOCATION_ID", cfg.CRMLocationID},
		{"GHL_SALES_PIPELINE_ID", cfg.SalesPipelineID},
		{"GHL_NEW_BOOKING_STAGE_ID", cfg.NewBookingStageID},
		{"GHL_SURVEY_FIELD_ID", cfg.SurveyFieldID},
	}
	for _, item := range required {
		if item.value == "" {
			utils.Logger.Warn().Str("env", item.name).Msg("缺少必要的环境变量")
		}
	}

	return cfg
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
