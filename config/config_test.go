package config

import (
	"testing"

	"booking-relay/utils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	utils.Logger = zerolog.Nop()
	t.Setenv("PORT", "")
	t.Setenv("GHL_API_KEY", "")
	t.Setenv("GHL_BASE_URL", "")
	t.Setenv("GHL_LOCATION_ID", "")

	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://services.leadconnectorhq.com", cfg.CRMBaseURL)
	// 缺失的必填项不阻止启动
	assert.Empty(t, cfg.CRMAPIKey)
}

func TestLoadConfigFromEnv(t *testing.T) {
	utils.Logger = zerolog.Nop()
	t.Setenv("PORT", "9090")
	t.Setenv("GHL_API_KEY", "key-123")
	t.Setenv("GHL_BASE_URL", "https://crm.example.com")
	t.Setenv("GHL_LOCATION_ID", "loc_9")
	t.Setenv("GHL_SALES_PIPELINE_ID", "pipe_9")
	t.Setenv("GHL_NEW_BOOKING_STAGE_ID", "stage_9")
	t.Setenv("GHL_SURVEY_FIELD_ID", "field_9")

	cfg := LoadConfig()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "key-123", cfg.CRMAPIKey)
	assert.Equal(t, "https://crm.example.com", cfg.CRMBaseURL)
	assert.Equal(t, "loc_9", cfg.CRMLocationID)
	assert.Equal(t, "pipe_9", cfg.SalesPipelineID)
	assert.Equal(t, "stage_9", cfg.NewBookingStageID)
	assert.Equal(t, "field_9", cfg.SurveyFieldID)
}
