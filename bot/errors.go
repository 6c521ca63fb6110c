package bot

import (
	"fmt"
	"strings"
)

// ErrorPrefix starts every error reply.
const ErrorPrefix = "⚠️ Error: "

// NotFoundError reports a name that could not be resolved, such as a
// channel passed to !summarize.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// UsageError reports missing or malformed command arguments.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

// ReportError converts any handler error into a single chat line: the error
// prefix followed by the raw error text with line breaks flattened.
func ReportError(err error) string {
	if err == nil {
		return ""
	}
	text := strings.Join(strings.Fields(err.Error()), " ")
	return ErrorPrefix + text
}
