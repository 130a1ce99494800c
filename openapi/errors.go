package openapi

import (
	"fmt"
	"strings"
)

// ImportError wraps acquisition and parse failures. Source names the file
// path or URL the import was attempted from.
type ImportError struct {
	Source string
	Msg    string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Msg, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Msg, e.Source)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// ValidationError reports every mandatory top-level field the document is
// missing, in check order, never just the first.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid OpenAPI document: missing %s", strings.Join(e.Missing, ", "))
}
