package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Atomic-Germ/mcp-api-consumer/utils"
)

// defaultClient is used for HTTP requests with a timeout to avoid hanging.
var defaultClient = &http.Client{Timeout: 30 * time.Second}

var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
	"PATCH": true, "HEAD": true, "OPTIONS": true,
}

// HTTPRequestAdapter builds and executes one HTTP request from generic
// inputs. Inputs: url (required), method (default GET), headers (map,
// $env:NAME values expanded from the environment), query (map merged into
// the URL), body (JSON-marshaled for methods that carry one).
//
// Non-2xx responses are returned as results, not errors — the consumer
// reports what the API said. Only transport-level failures are errors.
type HTTPRequestAdapter struct{}

// ID returns the unique identifier of the HTTP request adapter.
func (a *HTTPRequestAdapter) ID() string {
	return "http"
}

// Execute performs a single HTTP request. One attempt, no retry; the shared
// client's 30s timeout is the only guard.
func (a *HTTPRequestAdapter) Execute(ctx context.Context, inputs map[string]any) (map[string]any, error) {
	target, ok := inputs["url"].(string)
	if !ok || target == "" {
		return nil, utils.Errorf("missing url")
	}

	method := "GET"
	if m, ok := inputs["method"].(string); ok && m != "" {
		method = strings.ToUpper(m)
	}
	if !allowedMethods[method] {
		return nil, utils.Errorf("unsupported method %s", method)
	}

	target, err := mergeQuery(target, inputs)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	contentType := ""
	if payload, ok := inputs["body"]; ok && payload != nil && methodHasBody(method) {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, utils.Errorf("failed to encode request body: %v", err)
		}
		bodyReader = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, err
	}
	for k, v := range collectHeaders(inputs) {
		req.Header.Set(k, v)
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json, text/*;q=0.9, */*;q=0.8")
	}

	resp, err := defaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}

	result := map[string]any{
		"status":     resp.StatusCode,
		"statusText": http.StatusText(resp.StatusCode),
		"headers":    headers,
	}
	// Try JSON unmarshal, fall back to raw string
	var parsed any
	if err := json.Unmarshal(data, &parsed); err == nil {
		result["body"] = parsed
	} else {
		result["body"] = string(data)
	}
	return result, nil
}

func methodHasBody(method string) bool {
	switch method {
	case "POST", "PUT", "PATCH", "DELETE":
		return true
	}
	return false
}

// mergeQuery folds the query input map into the target URL.
func mergeQuery(target string, inputs map[string]any) (string, error) {
	q, ok := inputs["query"].(map[string]any)
	if !ok || len(q) == 0 {
		return target, nil
	}
	u, err := url.Parse(target)
	if err != nil {
		return "", utils.Errorf("invalid url %s: %v", target, err)
	}
	values := u.Query()
	for k, v := range q {
		if s, ok := v.(string); ok {
			values.Set(k, s)
		} else {
			b, _ := json.Marshal(v)
			values.Set(k, string(b))
		}
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}

// collectHeaders reads the headers input map, expanding $env: references so
// secrets stay out of tool arguments.
func collectHeaders(inputs map[string]any) map[string]string {
	headers := make(map[string]string)
	h, ok := inputs["headers"].(map[string]any)
	if !ok {
		return headers
	}
	for k, v := range h {
		if s, ok := v.(string); ok {
			headers[k] = expandEnv(s)
		}
	}
	return headers
}

func expandEnv(val string) string {
	for {
		start := strings.Index(val, "$env:")
		if start == -1 {
			break
		}
		end := start + 5
		for end < len(val) && (val[end] == '_' || val[end] == '-' || (val[end] >= 'A' && val[end] <= 'Z') || (val[end] >= 'a' && val[end] <= 'z') || (val[end] >= '0' && val[end] <= '9')) {
			end++
		}
		varName := val[start+5 : end]
		val = val[:start] + os.Getenv(varName) + val[end:]
	}
	return val
}
