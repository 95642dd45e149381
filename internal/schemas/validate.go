// Package schemas validates imported candidate-profile documents against an
// embedded JSON Schema before they enter the pipeline.
package schemas

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed candidate_profile.schema.json
var candidateProfileSchema []byte

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates all schema violations of a document.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "document failed schema validation"
	}
	first := e.Errors[0]
	if len(e.Errors) == 1 {
		return fmt.Sprintf("schema validation failed at %s: %s", first.Field, first.Message)
	}
	return fmt.Sprintf("schema validation failed at %s: %s (and %d more)", first.Field, first.Message, len(e.Errors)-1)
}

// ValidateCandidateProfile checks a raw profile document against the
// embedded schema. Returns a *ValidationError listing every violation, or an
// ordinary error when the document is not valid JSON at all.
func ValidateCandidateProfile(document []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(candidateProfileSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate profile document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
