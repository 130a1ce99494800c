package api

import (
	"context"
	"errors"
	"strings"

	"github.com/Atomic-Germ/mcp-api-consumer/adapter"
	"github.com/Atomic-Germ/mcp-api-consumer/constants"
	"github.com/Atomic-Germ/mcp-api-consumer/docgen"
	"github.com/Atomic-Germ/mcp-api-consumer/openapi"
	"github.com/Atomic-Germ/mcp-api-consumer/utils"
	"github.com/google/uuid"
)

// ErrSourceRequired is returned when an operation is called without the
// source of the specification to work on.
var ErrSourceRequired = errors.New("source is required (file path or URL of the OpenAPI document)")

// EndpointSummary is one row of the listEndpoints result.
type EndpointSummary struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	OperationID string `json:"operationId,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// ImportResult summarizes a successful import.
type ImportResult struct {
	Title         string `json:"title"`
	Version       string `json:"version"`
	EndpointCount int    `json:"endpointCount"`
	Source        string `json:"source"`
}

// APIService defines the full API surface shared by the HTTP, CLI, and
// MCP interfaces. Every operation is self-contained: the exploration calls
// take the document source and import it fresh, so no specification state
// is carried between calls.
type APIService interface {
	ImportSpecification(ctx context.Context, source, sourceType string) (*ImportResult, error)
	ExecuteRequest(ctx context.Context, inputs map[string]any) (map[string]any, error)
	ListEndpoints(ctx context.Context, source, sourceType string) ([]EndpointSummary, error)
	DescribeEndpoint(ctx context.Context, source, sourceType, path, method string) (*openapi.Endpoint, error)
	DocumentAPI(ctx context.Context, source, sourceType string) (string, error)
}

// defaultService is the default implementation of APIService.
type defaultService struct {
	http *adapter.HTTPRequestAdapter
}

// Compile-time check.
var _ APIService = (*defaultService)(nil)

// NewAPIService returns the default APIService implementation.
func NewAPIService() APIService {
	return &defaultService{http: &adapter.HTTPRequestAdapter{}}
}

// importSpec runs the import pipeline for one call, tagging the context
// with a request ID for the logs.
func (s *defaultService) importSpec(ctx context.Context, source, sourceType string) (*openapi.Specification, error) {
	if source == "" {
		return nil, ErrSourceRequired
	}
	ctx = utils.WithRequestID(ctx, uuid.NewString())

	if sourceType == "" {
		sourceType = inferSourceType(source)
	}

	var spec *openapi.Specification
	var err error
	switch sourceType {
	case constants.SourceTypeFile:
		spec, err = openapi.ImportFromFile(source)
	case constants.SourceTypeURL:
		spec, err = openapi.ImportFromURL(ctx, source)
	default:
		return nil, utils.Errorf("unknown source type %q (want %q or %q)",
			sourceType, constants.SourceTypeFile, constants.SourceTypeURL)
	}
	if err != nil {
		utils.ErrorCtx(ctx, "import failed", "source", source, "error", err)
		return nil, err
	}

	utils.DebugCtx(ctx, "specification imported",
		"source", source,
		"title", spec.Info.Title,
		"version", spec.Info.Version,
		"endpoints", len(spec.Endpoints))
	return spec, nil
}

// inferSourceType treats http(s) sources as URLs and everything else as a
// file path.
func inferSourceType(source string) string {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return constants.SourceTypeURL
	}
	return constants.SourceTypeFile
}

func (s *defaultService) ImportSpecification(ctx context.Context, source, sourceType string) (*ImportResult, error) {
	spec, err := s.importSpec(ctx, source, sourceType)
	if err != nil {
		return nil, err
	}
	return &ImportResult{
		Title:         spec.Info.Title,
		Version:       spec.Info.Version,
		EndpointCount: len(spec.Endpoints),
		Source:        source,
	}, nil
}

func (s *defaultService) ExecuteRequest(ctx context.Context, inputs map[string]any) (map[string]any, error) {
	ctx = utils.WithRequestID(ctx, uuid.NewString())
	utils.DebugCtx(ctx, "executing request", "url", inputs["url"], "method", inputs["method"])
	return s.http.Execute(ctx, inputs)
}

func (s *defaultService) ListEndpoints(ctx context.Context, source, sourceType string) ([]EndpointSummary, error) {
	spec, err := s.importSpec(ctx, source, sourceType)
	if err != nil {
		return nil, err
	}
	summaries := make([]EndpointSummary, 0, len(spec.Endpoints))
	for _, ep := range spec.Endpoints {
		summaries = append(summaries, EndpointSummary{
			Method:      ep.Method,
			Path:        ep.Path,
			OperationID: ep.OperationID,
			Summary:     ep.Summary,
		})
	}
	return summaries, nil
}

// DescribeEndpoint imports the document and looks up one endpoint by exact
// path and case-insensitive method.
func (s *defaultService) DescribeEndpoint(ctx context.Context, source, sourceType, path, method string) (*openapi.Endpoint, error) {
	spec, err := s.importSpec(ctx, source, sourceType)
	if err != nil {
		return nil, err
	}
	method = strings.ToUpper(method)
	for i := range spec.Endpoints {
		ep := &spec.Endpoints[i]
		if ep.Path == path && ep.Method == method {
			return ep, nil
		}
	}
	return nil, utils.Errorf("endpoint %s %s not found in %s", method, path, source)
}

func (s *defaultService) DocumentAPI(ctx context.Context, source, sourceType string) (string, error) {
	spec, err := s.importSpec(ctx, source, sourceType)
	if err != nil {
		return "", err
	}
	return docgen.Markdown(spec)
}
