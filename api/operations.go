package api

import (
	"context"
	"net/http"
	"reflect"

	"github.com/Atomic-Germ/mcp-api-consumer/constants"
	"github.com/Atomic-Germ/mcp-api-consumer/docs"
	"github.com/Atomic-Germ/mcp-api-consumer/utils"
	"github.com/spf13/cobra"
)

// OperationDefinition defines a single operation with all its metadata and implementation
type OperationDefinition struct {
	ID          string                                                           // Unique identifier
	Name        string                                                           // Display name
	Description string                                                           // Human readable description
	HTTPMethod  string                                                           // HTTP method (GET, POST, etc.)
	HTTPPath    string                                                           // HTTP path pattern
	CLIUse      string                                                           // CLI command usage pattern
	CLIShort    string                                                           // CLI short description
	MCPName     string                                                           // MCP tool name (defaults to ID)
	ArgsType    reflect.Type                                                     // Type for request arguments
	Handler     func(ctx context.Context, svc APIService, args any) (any, error) // Core implementation
	CLIHandler  func(cmd *cobra.Command, args []string, svc APIService) error    // Optional custom CLI handler
	HTTPHandler func(w http.ResponseWriter, r *http.Request, svc APIService)     // Optional custom HTTP handler
	MCPHandler  any                                                              // Optional custom typed MCP handler
	SkipHTTP    bool                                                             // Skip HTTP interface generation
	SkipMCP     bool                                                             // Skip MCP interface generation
	SkipCLI     bool                                                             // Skip CLI interface generation
}

// Argument types for the registered operations. Every operation that reads
// a specification takes its source, since no document state is held
// between calls.

type EmptyArgs struct{}

type ImportSpecArgs struct {
	Source     string `json:"source" flag:"source" description:"File path or URL of the OpenAPI document"`
	SourceType string `json:"sourceType" flag:"source-type" description:"Source type: file or url (inferred when omitted)"`
}

type HTTPRequestArgs struct {
	URL     string         `json:"url" flag:"url" description:"Request URL"`
	Method  string         `json:"method" flag:"method" description:"HTTP method (default GET)"`
	Headers map[string]any `json:"headers" flag:"headers-json" description:"Request headers as JSON"`
	Query   map[string]any `json:"query" flag:"query-json" description:"Query parameters as JSON"`
	Body    any            `json:"body" flag:"body-json" description:"Request body as JSON"`
}

type ListEndpointsArgs struct {
	Source     string `json:"source" flag:"source" description:"File path or URL of the OpenAPI document"`
	SourceType string `json:"sourceType" flag:"source-type" description:"Source type: file or url (inferred when omitted)"`
}

type DescribeEndpointArgs struct {
	Source     string `json:"source" flag:"source" description:"File path or URL of the OpenAPI document"`
	SourceType string `json:"sourceType" flag:"source-type" description:"Source type: file or url (inferred when omitted)"`
	Path       string `json:"path" flag:"path" description:"Endpoint path as written in the document"`
	Method     string `json:"method" flag:"method" description:"HTTP method (case-insensitive)"`
}

type DocumentAPIArgs struct {
	Source     string `json:"source" flag:"source" description:"File path or URL of the OpenAPI document"`
	SourceType string `json:"sourceType" flag:"source-type" description:"Source type: file or url (inferred when omitted)"`
}

// Global operation registry
var operationRegistry = make(map[string]*OperationDefinition)

// RegisterOperation registers an operation definition
func RegisterOperation(op *OperationDefinition) {
	if op.MCPName == "" {
		op.MCPName = op.ID
	}
	operationRegistry[op.ID] = op
}

// GetOperation retrieves an operation by ID
func GetOperation(id string) (*OperationDefinition, bool) {
	op, exists := operationRegistry[id]
	return op, exists
}

// GetAllOperations returns all registered operations
func GetAllOperations() map[string]*OperationDefinition {
	return operationRegistry
}

// writeMarkdownResponse writes a text/markdown body.
func writeMarkdownResponse(w http.ResponseWriter, r *http.Request, body string) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeTextMarkdown)
	if _, err := w.Write([]byte(body)); err != nil {
		utils.ErrorCtx(r.Context(), "failed to write response", "error", err)
	}
}

// pendingStub returns an operation whose implementation is not built yet.
// It answers with the pending text on MCP and CLI, and 501 over HTTP.
func pendingStub(id, name, desc, path, cliUse, cliShort, mcpName, msg string) *OperationDefinition {
	return &OperationDefinition{
		ID:          id,
		Name:        name,
		Description: desc,
		HTTPMethod:  http.MethodPost,
		HTTPPath:    path,
		CLIUse:      cliUse,
		CLIShort:    cliShort,
		MCPName:     mcpName,
		ArgsType:    reflect.TypeOf(EmptyArgs{}),
		HTTPHandler: func(w http.ResponseWriter, r *http.Request, svc APIService) {
			utils.WriteHTTPError(w, msg, http.StatusNotImplemented)
		},
		Handler: func(ctx context.Context, svc APIService, args any) (any, error) {
			return msg, nil
		},
	}
}

// init registers all core operations
func init() {
	// Import Specification
	RegisterOperation(&OperationDefinition{
		ID:          constants.InterfaceIDImportSpec,
		Name:        "Import Specification",
		Description: constants.InterfaceDescImportSpec,
		HTTPMethod:  http.MethodPost,
		HTTPPath:    "/import",
		CLIUse:      "import <source>",
		CLIShort:    "Import an OpenAPI specification from a file or URL",
		MCPName:     constants.MCPToolImportSpec,
		ArgsType:    reflect.TypeOf(ImportSpecArgs{}),
		Handler: func(ctx context.Context, svc APIService, args any) (any, error) {
			a := args.(*ImportSpecArgs)
			return svc.ImportSpecification(ctx, a.Source, a.SourceType)
		},
	})

	// HTTP Request
	RegisterOperation(&OperationDefinition{
		ID:          constants.InterfaceIDHTTPRequest,
		Name:        "HTTP Request",
		Description: constants.InterfaceDescHTTPRequest,
		HTTPMethod:  http.MethodPost,
		HTTPPath:    "/request",
		CLIUse:      "request <url>",
		CLIShort:    "Execute an HTTP request against an API",
		MCPName:     constants.MCPToolHTTPRequest,
		ArgsType:    reflect.TypeOf(HTTPRequestArgs{}),
		Handler: func(ctx context.Context, svc APIService, args any) (any, error) {
			a := args.(*HTTPRequestArgs)
			inputs := map[string]any{"url": a.URL}
			if a.Method != "" {
				inputs["method"] = a.Method
			}
			if a.Headers != nil {
				inputs["headers"] = a.Headers
			}
			if a.Query != nil {
				inputs["query"] = a.Query
			}
			if a.Body != nil {
				inputs["body"] = a.Body
			}
			return svc.ExecuteRequest(ctx, inputs)
		},
	})

	// List Endpoints
	RegisterOperation(&OperationDefinition{
		ID:          constants.InterfaceIDListEndpoints,
		Name:        "List Endpoints",
		Description: constants.InterfaceDescListEndpoints,
		HTTPMethod:  http.MethodGet,
		HTTPPath:    "/endpoints",
		CLIUse:      "endpoints <source>",
		CLIShort:    "List the endpoints of a specification",
		MCPName:     constants.MCPToolListEndpoints,
		ArgsType:    reflect.TypeOf(ListEndpointsArgs{}),
		Handler: func(ctx context.Context, svc APIService, args any) (any, error) {
			a := args.(*ListEndpointsArgs)
			return svc.ListEndpoints(ctx, a.Source, a.SourceType)
		},
	})

	// Describe Endpoint
	RegisterOperation(&OperationDefinition{
		ID:          constants.InterfaceIDDescribeEndpoint,
		Name:        "Describe Endpoint",
		Description: constants.InterfaceDescDescribeEndpoint,
		HTTPMethod:  http.MethodGet,
		HTTPPath:    "/endpoints/detail",
		CLIUse:      "describe <source>",
		CLIShort:    "Show the full definition of one endpoint",
		MCPName:     constants.MCPToolDescribeEndpoint,
		ArgsType:    reflect.TypeOf(DescribeEndpointArgs{}),
		Handler: func(ctx context.Context, svc APIService, args any) (any, error) {
			a := args.(*DescribeEndpointArgs)
			return svc.DescribeEndpoint(ctx, a.Source, a.SourceType, a.Path, a.Method)
		},
	})

	// Document API
	RegisterOperation(&OperationDefinition{
		ID:          constants.InterfaceIDDocumentAPI,
		Name:        "Document API",
		Description: constants.InterfaceDescDocumentAPI,
		HTTPMethod:  http.MethodGet,
		HTTPPath:    "/document",
		CLIUse:      "document <source>",
		CLIShort:    "Render Markdown documentation for a specification",
		MCPName:     constants.MCPToolDocumentAPI,
		ArgsType:    reflect.TypeOf(DocumentAPIArgs{}),
		HTTPHandler: func(w http.ResponseWriter, r *http.Request, svc APIService) {
			md, err := svc.DocumentAPI(r.Context(), r.URL.Query().Get("source"), r.URL.Query().Get("sourceType"))
			if err != nil {
				writeHTTPOperationError(w, err)
				return
			}
			writeMarkdownResponse(w, r, md)
		},
		Handler: func(ctx context.Context, svc APIService, args any) (any, error) {
			a := args.(*DocumentAPIArgs)
			return svc.DocumentAPI(ctx, a.Source, a.SourceType)
		},
	})

	// Pending tools, reserved in the MCP surface before their
	// implementations land.
	RegisterOperation(pendingStub(
		constants.InterfaceIDGenerateTests,
		"Generate Tests",
		constants.InterfaceDescGenerateTests,
		"/tests/generate",
		"generate-tests",
		"Generate test cases for an API endpoint",
		constants.MCPToolGenerateTests,
		constants.MsgGenerateTestsPending,
	))
	RegisterOperation(pendingStub(
		constants.InterfaceIDMockServer,
		"Mock Server",
		constants.InterfaceDescMockServer,
		"/mock",
		"mock-server",
		"Start a mock server from a specification",
		constants.MCPToolMockServer,
		constants.MsgMockServerPending,
	))
	RegisterOperation(pendingStub(
		constants.InterfaceIDValidateResponse,
		"Validate Response",
		constants.InterfaceDescValidateResponse,
		"/validate-response",
		"validate-response",
		"Validate an API response against its schema",
		constants.MCPToolValidateResponse,
		constants.MsgValidateResponsePending,
	))

	// Guide
	RegisterOperation(&OperationDefinition{
		ID:          constants.InterfaceIDGuide,
		Name:        "Usage Guide",
		Description: constants.InterfaceDescGuide,
		HTTPMethod:  http.MethodGet,
		HTTPPath:    "/guide",
		CLIUse:      "guide",
		CLIShort:    "Show the usage guide",
		MCPName:     constants.MCPToolGuide,
		ArgsType:    reflect.TypeOf(EmptyArgs{}),
		HTTPHandler: func(w http.ResponseWriter, r *http.Request, svc APIService) {
			writeMarkdownResponse(w, r, docs.UsageGuide)
		},
		Handler: func(ctx context.Context, svc APIService, args any) (any, error) {
			return docs.UsageGuide, nil
		},
	})
}
