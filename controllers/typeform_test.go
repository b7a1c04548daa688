package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"booking-relay/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeformPayload() gin.H {
	return gin.H{
		"event_type": "form_response",
		"form_response": gin.H{
			"form_id": "form_1",
			"definition": gin.H{
				"fields": []gin.H{
					{"id": "f1", "title": "Email"},
					{"id": "f2", "title": "Agree?"},
				},
			},
			"answers": []gin.H{
				{"type": "email", "field": gin.H{"id": "f1"}, "email": "ada@example.com"},
				{"type": "boolean", "field": gin.H{"id": "f2"}, "boolean": true},
			},
		},
	}
}

func TestTypeformIgnoresMissingSubmission(t *testing.T) {
	crm := newFakeCRM(t)
	router := newTestRouter(crm)

	recorder, response := postJSON(t, router, "/webhook/typeform", gin.H{"event_type": "form_response"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ignored", response["status"])
	assert.Empty(t, crm.allCalls())
}

func TestTypeformMissingEmailAnswer(t *testing.T) {
	crm := newFakeCRM(t)
	router := newTestRouter(crm)

	payload := gin.H{
		"event_type": "form_response",
		"form_response": gin.H{
			"form_id": "form_1",
			"answers": []gin.H{
				{"type": "text", "field": gin.H{"id": "f1"}, "text": "bonjour"},
			},
		},
	}
	recorder, response := postJSON(t, router, "/webhook/typeform", payload)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "error", response["status"])
	assert.NotEmpty(t, response["message"])
	assert.Empty(t, crm.allCalls())
}

func TestTypeformContactNotFound(t *testing.T) {
	crm := newFakeCRM(t)
	router := newTestRouter(crm)

	recorder, response := postJSON(t, router, "/webhook/typeform", typeformPayload())

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "contact_not_found", response["status"])
	assert.Equal(t, "ada@example.com", response["email"])

	// 只发生一次联系人查询，没有写入
	require.Len(t, crm.allCalls(), 1)
	assert.Equal(t, "/contacts/search/duplicate", crm.allCalls()[0].Path)
}

func TestTypeformSuccessWritesCustomField(t *testing.T) {
	crm := newFakeCRM(t)
	crm.contactByEmail["ada@example.com"] = &models.Contact{ID: "c1"}
	router := newTestRouter(crm)

	recorder, response := postJSON(t, router, "/webhook/typeform", typeformPayload())

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "success", response["status"])
	assert.Equal(t, "c1", response["contactId"])
	assert.Equal(t, "ada@example.com", response["email"])

	updates := crm.callsTo("/contacts/c1")
	require.Len(t, updates, 1)
	assert.Equal(t, http.MethodPut, updates[0].Method)

	var body models.ContactCustomFieldUpdate
	require.NoError(t, json.Unmarshal(updates[0].Body, &body))
	require.Len(t, body.CustomFields, 1)
	assert.Equal(t, "field_survey", body.CustomFields[0].ID)
	assert.Equal(t, "Email: ada@example.com\nAgree?: Oui", body.CustomFields[0].Value)
}

func TestTypeformCrmFailureReturns500(t *testing.T) {
	crm := newFakeCRM(t)
	crm.failAll = true
	router := newTestRouter(crm)

	recorder, response := postJSON(t, router, "/webhook/typeform", typeformPayload())

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "error", response["status"])
	assert.Contains(t, response["message"], "crm indisponible")
}
