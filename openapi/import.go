package openapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// defaultClient is shared by all URL imports; its timeout is the only guard
// on a slow remote (single attempt, no retry).
var defaultClient = &http.Client{Timeout: 30 * time.Second}

// ImportFromFile reads an OpenAPI document from disk and runs it through
// parse, validate, and extract. ImportError and ValidationError from the
// sub-steps propagate unchanged; anything else (missing file, permission)
// is wrapped into an ImportError naming the path.
func ImportFromFile(path string) (*Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ImportError{Source: path, Msg: "failed to import specification", Err: err}
	}
	doc, err := ParseDocument(data, path)
	if err != nil {
		return nil, classifyImportErr(path, err)
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return Extract(doc), nil
}

// ImportFromURL fetches an OpenAPI document with a single unauthenticated
// GET and runs the same pipeline. The response Content-Type selects the
// format: anything containing "yaml" parses as YAML, everything else as
// JSON, so YAML-serving endpoints work. Failure policy matches
// ImportFromFile, with the URL as the named source.
func ImportFromURL(ctx context.Context, url string) (*Specification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ImportError{Source: url, Msg: "failed to import specification", Err: err}
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.8")

	resp, err := defaultClient.Do(req)
	if err != nil {
		return nil, &ImportError{Source: url, Msg: "failed to import specification", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ImportError{Source: url, Msg: "failed to import specification", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ImportError{
			Source: url,
			Msg:    "failed to import specification",
			Err:    errors.New("unexpected status " + resp.Status),
		}
	}

	var doc *Value
	if strings.Contains(strings.ToLower(resp.Header.Get("Content-Type")), "yaml") {
		doc, err = parseYAML(data)
	} else {
		doc, err = parseJSON(data)
	}
	if err != nil {
		return nil, &ImportError{Source: url, Msg: "failed to parse document", Err: err}
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}
	return Extract(doc), nil
}

// classifyImportErr keeps already-typed errors as-is and wraps anything
// unexpected, so callers always see one of the typed kinds.
func classifyImportErr(source string, err error) error {
	var ie *ImportError
	var ve *ValidationError
	if errors.As(err, &ie) || errors.As(err, &ve) {
		return err
	}
	return &ImportError{Source: source, Msg: "failed to import specification", Err: err}
}
