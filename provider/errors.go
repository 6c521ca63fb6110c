package provider

import "fmt"

// CompletionError reports any failure of a completion call. Authentication,
// rate limiting, model errors and transport failures are deliberately not
// distinguished: callers only surface the upstream detail.
type CompletionError struct {
	Provider string
	Model    string
	Err      error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("%s completion failed (model %s): %v", e.Provider, e.Model, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

func newCompletionError(providerID, modelName string, err error) *CompletionError {
	return &CompletionError{Provider: providerID, Model: modelName, Err: err}
}
