package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCandidateProfile_Valid(t *testing.T) {
	document := []byte(`{
		"summary": "Backend developer",
		"skills": "Go, PostgreSQL",
		"experience": [
			{"employer": "Acme", "role": "Developer", "start_date": "2020-01", "end_date": "2024-06", "description": "- Built services"}
		],
		"education": [
			{"institution": "TU Berlin", "degree": "BSc", "field": "Informatik"}
		]
	}`)

	assert.NoError(t, ValidateCandidateProfile(document))
}

func TestValidateCandidateProfile_EmptyObject(t *testing.T) {
	assert.NoError(t, ValidateCandidateProfile([]byte(`{}`)))
}

func TestValidateCandidateProfile_UnknownField(t *testing.T) {
	err := ValidateCandidateProfile([]byte(`{"salary_expectation": 90000}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateCandidateProfile_WrongType(t *testing.T) {
	err := ValidateCandidateProfile([]byte(`{"skills": ["Go", "SQL"]}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Equal(t, "skills", verr.Errors[0].Field)
}

func TestValidateCandidateProfile_NotJSON(t *testing.T) {
	err := ValidateCandidateProfile([]byte(`this is not json`))

	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr), "malformed JSON must not be reported as a schema violation")
	assert.Contains(t, err.Error(), "failed to validate")
}

func TestValidationError_Message(t *testing.T) {
	single := &ValidationError{Errors: []FieldError{{Field: "skills", Message: "Invalid type"}}}
	assert.Equal(t, "schema validation failed at skills: Invalid type", single.Error())

	multiple := &ValidationError{Errors: []FieldError{
		{Field: "skills", Message: "Invalid type"},
		{Field: "summary", Message: "Invalid type"},
	}}
	assert.Contains(t, multiple.Error(), "(and 1 more)")
}
