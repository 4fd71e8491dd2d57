package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeDocument_Valid(t *testing.T) {
	doc := `{
		"personalInfo": {
			"fullName": "Jane Doe",
			"email": "jane.doe@acmecorp.com",
			"phone": "+1 555 867 5309",
			"address": "742 Evergreen Terrace, Springfield, IL 62704"
		},
		"workExperience": [
			{
				"company": "Acme Corp",
				"position": "Engineer",
				"startDate": "2020-01-01",
				"isCurrentJob": true,
				"description": "Built things."
			}
		],
		"education": [
			{"institution": "University of Texas", "degree": "BSc", "field": "CS", "gpa": "3.8"}
		],
		"skills": [{"name": "Go", "category": "technical"}],
		"achievements": [{"text": "Shipped a product used by thousands of people."}],
		"selectedTemplate": "modern"
	}`

	assert.NoError(t, ValidateResumeDocument([]byte(doc)))
}

func TestValidateResumeDocument_EmptyObject(t *testing.T) {
	// Presence of sections is a domain concern, not a shape concern
	assert.NoError(t, ValidateResumeDocument([]byte(`{}`)))
}

func TestValidateResumeDocument_WrongTypes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"personalInfo as string", `{"personalInfo": "Jane Doe"}`},
		{"workExperience as object", `{"workExperience": {"company": "Acme"}}`},
		{"isCurrentJob as string", `{"workExperience": [{"isCurrentJob": "yes"}]}`},
		{"gpa as number", `{"education": [{"gpa": 3.8}]}`},
		{"skills as strings", `{"skills": ["Go", "Python"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResumeDocument([]byte(tt.doc))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateResumeDocument_UnknownField(t *testing.T) {
	err := ValidateResumeDocument([]byte(`{"hobbies": ["chess"]}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateResumeDocument_MalformedJSON(t *testing.T) {
	err := ValidateResumeDocument([]byte(`{ invalid json }`))
	require.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "personalInfo", Message: "Invalid type"},
		{Field: "skills", Message: "Invalid type"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "schema validation failed")
	assert.Contains(t, msg, "1. personalInfo")
	assert.Contains(t, msg, "2. skills")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "properties": {"n": {"type": "integer"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"n": 3}`))
	assert.Error(t, ValidateJSONString(schema, `{"n": "three"}`))
}
