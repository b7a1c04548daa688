package utils

import (
	"testing"

	"booking-relay/models"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestFormatAnswersBooleanLocalized(t *testing.T) {
	fr := &models.FormResponse{
		Definition: models.FormDefinition{
			Fields: []models.FormField{{ID: "f1", Title: "Agree?"}},
		},
		Answers: []models.FormAnswer{
			{Type: "boolean", Field: models.FormFieldRef{ID: "f1"}, Boolean: boolPtr(true)},
		},
	}
	assert.Equal(t, "Agree?: Oui", FormatAnswers(fr))

	fr.Answers[0].Boolean = boolPtr(false)
	assert.Equal(t, "Agree?: Non", FormatAnswers(fr))
}

func TestFormatAnswersFallsBackToFieldID(t *testing.T) {
	fr := &models.FormResponse{
		Answers: []models.FormAnswer{
			{Type: "text", Field: models.FormFieldRef{ID: "f9"}, Text: "hello"},
		},
	}
	assert.Equal(t, "f9: hello", FormatAnswers(fr))
}

func TestFormatAnswersMixedTypes(t *testing.T) {
	fr := &models.FormResponse{
		Definition: models.FormDefinition{
			Fields: []models.FormField{
				{ID: "f1", Title: "Service"},
				{ID: "f2", Title: "Email"},
				{ID: "f3", Title: "Téléphone"},
				{ID: "f4", Title: "Budget"},
			},
		},
		Answers: []models.FormAnswer{
			{Type: "choice", Field: models.FormFieldRef{ID: "f1"}, Choice: &models.FormChoice{Label: "Coaching"}},
			{Type: "email", Field: models.FormFieldRef{ID: "f2"}, Email: "ada@example.com"},
			{Type: "phone_number", Field: models.FormFieldRef{ID: "f3"}, PhoneNumber: "+33612345678"},
			{Type: "number", Field: models.FormFieldRef{ID: "f4"}, Number: floatPtr(42)},
		},
	}
	expected := "Service: Coaching\n" +
		"Email: ada@example.com\n" +
		"Téléphone: +33612345678\n" +
		"Budget: 42"
	assert.Equal(t, expected, FormatAnswers(fr))
}

func TestExtractEmail(t *testing.T) {
	fr := &models.FormResponse{
		Answers: []models.FormAnswer{
			{Type: "text", Field: models.FormFieldRef{ID: "f1"}, Text: "bonjour"},
			{Type: "email", Field: models.FormFieldRef{ID: "f2"}, Email: "ada@example.com"},
			{Type: "email", Field: models.FormFieldRef{ID: "f3"}, Email: "autre@example.com"},
		},
	}
	assert.Equal(t, "ada@example.com", ExtractEmail(fr))
}

func TestExtractEmailMissing(t *testing.T) {
	fr := &models.FormResponse{
		Answers: []models.FormAnswer{
			{Type: "text", Field: models.FormFieldRef{ID: "f1"}, Text: "bonjour"},
		},
	}
	assert.Equal(t, "", ExtractEmail(fr))
}
