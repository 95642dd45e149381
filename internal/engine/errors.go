package engine

import "fmt"

// InvalidInputError reports unusable analysis input: a missing profile or
// blank job text. It is fatal to the run and never retried.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}
