package constants

// Operation identifiers. Each ID names one operation in the api registry and
// is shared by the HTTP, CLI, and MCP surfaces.
const (
	InterfaceIDImportSpec       = "importSpec"
	InterfaceIDHTTPRequest      = "httpRequest"
	InterfaceIDListEndpoints    = "listEndpoints"
	InterfaceIDDescribeEndpoint = "describeEndpoint"
	InterfaceIDDocumentAPI      = "documentAPI"
	InterfaceIDGenerateTests    = "generateTests"
	InterfaceIDMockServer       = "mockServer"
	InterfaceIDValidateResponse = "validateResponse"
	InterfaceIDGuide            = "guide"
	InterfaceIDMetadata         = "metadata"
)

// Operation descriptions.
const (
	InterfaceDescImportSpec       = "Import an OpenAPI 3.x specification from a file or URL"
	InterfaceDescHTTPRequest      = "Execute an HTTP request against an API"
	InterfaceDescListEndpoints    = "List the endpoints of an OpenAPI specification"
	InterfaceDescDescribeEndpoint = "Show the full definition of one endpoint (path + method)"
	InterfaceDescDocumentAPI      = "Render Markdown documentation for an OpenAPI specification"
	InterfaceDescGenerateTests    = "Generate test cases for an API endpoint"
	InterfaceDescMockServer       = "Start a mock server from an OpenAPI specification"
	InterfaceDescValidateResponse = "Validate an API response against its schema"
	InterfaceDescGuide            = "Show the usage guide"
	InterfaceDescMetadata         = "List all registered CLI, HTTP, and MCP interfaces"
	InterfaceDescHealthCheck      = "Health check"
	InterfaceDescMetrics          = "Prometheus metrics"
)

// MCP tool names.
const (
	MCPToolImportSpec       = "apiconsumer_import_spec"
	MCPToolHTTPRequest      = "apiconsumer_http_request"
	MCPToolListEndpoints    = "apiconsumer_list_endpoints"
	MCPToolDescribeEndpoint = "apiconsumer_describe_endpoint"
	MCPToolDocumentAPI      = "apiconsumer_document_api"
	MCPToolGenerateTests    = "apiconsumer_generate_tests"
	MCPToolMockServer       = "apiconsumer_mock_server"
	MCPToolValidateResponse = "apiconsumer_validate_response"
	MCPToolGuide            = "apiconsumer_guide"
)

// Source types accepted by the import operations.
const (
	SourceTypeFile = "file"
	SourceTypeURL  = "url"
)

// Pending tool responses. These tools are part of the published surface but
// not implemented yet.
const (
	MsgGenerateTestsPending    = "test generation (not yet implemented)"
	MsgMockServerPending       = "mock server (not yet implemented)"
	MsgValidateResponsePending = "response validation (not yet implemented)"
)

// Defaults.
const (
	DefaultMCPAddr  = ":9090"
	DefaultHTTPHost = ""
	DefaultHTTPPort = 8080
	JSONIndent      = "  "
)

// EnvDebug enables debug logging when set.
const EnvDebug = "APICONSUMER_DEBUG"
