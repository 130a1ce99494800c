package openapi

import "strings"

// httpMethods is the fixed extraction order for operations on a path item.
var httpMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}

// Info is the API metadata from the document's info block.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Parameter is one entry of an operation's parameters list. Schema is the
// raw schema subtree, copied through verbatim; when the document omits it,
// it defaults to {"type":"string"}.
type Parameter struct {
	Name        string `json:"name"`
	In          string `json:"in"`
	Required    bool   `json:"required"`
	Schema      *Value `json:"schema"`
	Description string `json:"description,omitempty"`
}

// MediaType pairs a content-type key with its (possibly absent) schema.
type MediaType struct {
	MimeType string `json:"mimeType"`
	Schema   *Value `json:"schema,omitempty"`
}

// RequestBody describes an operation's request body. Content holds one
// entry per content-type key, in document order.
type RequestBody struct {
	Required bool        `json:"required"`
	Content  []MediaType `json:"content"`
}

// Response describes one status-code entry of an operation's responses map.
// Content is nil (JSON-omitted) when the response declares no content.
type Response struct {
	StatusCode  string      `json:"statusCode"`
	Description string      `json:"description"`
	Content     []MediaType `json:"content,omitempty"`
}

// Endpoint is one (path, method) operation. An endpoint exists exactly when
// the document's path item carries the method's lower-case field.
type Endpoint struct {
	Path        string       `json:"path"`
	Method      string       `json:"method"`
	OperationID string       `json:"operationId,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Parameters  []Parameter  `json:"parameters"`
	RequestBody *RequestBody `json:"requestBody,omitempty"`
	Responses   []Response   `json:"responses"`
}

// Components carries the document's reusable definitions as untouched
// subtrees. It is nil on the Specification when the document has no
// components field.
type Components struct {
	Schemas    *Value `json:"schemas,omitempty"`
	Parameters *Value `json:"parameters,omitempty"`
	Responses  *Value `json:"responses,omitempty"`
}

// Specification is the normalized output of one import call. Raw retains
// the whole original document for callers needing untouched access.
type Specification struct {
	Info       Info        `json:"info"`
	Endpoints  []Endpoint  `json:"endpoints"`
	Components *Components `json:"components,omitempty"`
	Raw        *Value      `json:"raw"`
}

// Extract builds the normalized specification from a validated document.
// It is a pure function: no state is kept between calls, and running it
// twice on the same tree yields structurally equal results.
func Extract(doc *Value) *Specification {
	spec := &Specification{
		Info: extractInfo(doc),
		Raw:  doc,
	}

	if paths, ok := doc.Field("paths"); ok {
		spec.Endpoints = extractEndpoints(paths)
	}
	if spec.Endpoints == nil {
		spec.Endpoints = []Endpoint{}
	}

	if components, ok := doc.Field("components"); ok {
		c := &Components{}
		if schemas, ok := components.Field("schemas"); ok {
			c.Schemas = schemas
		}
		if params, ok := components.Field("parameters"); ok {
			c.Parameters = params
		}
		if responses, ok := components.Field("responses"); ok {
			c.Responses = responses
		}
		spec.Components = c
	}

	return spec
}

func extractInfo(doc *Value) Info {
	info := Info{}
	node, ok := doc.Field("info")
	if !ok {
		return info
	}
	if title, ok := node.Field("title"); ok {
		info.Title = title.Text()
	}
	if version, ok := node.Field("version"); ok {
		info.Version = version.Text()
	}
	if desc, ok := node.Field("description"); ok {
		info.Description = desc.Text()
	}
	return info
}

// extractEndpoints walks paths in document order, and each path item in the
// fixed method order. A path item that is not a keyed structure is skipped.
func extractEndpoints(paths *Value) []Endpoint {
	var endpoints []Endpoint
	for _, path := range paths.Keys() {
		item, _ := paths.Field(path)
		if !item.IsObject() {
			continue
		}
		for _, method := range httpMethods {
			op, ok := item.Field(strings.ToLower(method))
			if !ok {
				continue
			}
			endpoints = append(endpoints, extractEndpoint(path, method, op))
		}
	}
	return endpoints
}

func extractEndpoint(path, method string, op *Value) Endpoint {
	ep := Endpoint{
		Path:       path,
		Method:     method,
		Parameters: []Parameter{},
		Responses:  []Response{},
	}

	if id, ok := op.Field("operationId"); ok {
		ep.OperationID = id.Text()
	}
	if summary, ok := op.Field("summary"); ok {
		ep.Summary = summary.Text()
	}

	if params, ok := op.Field("parameters"); ok {
		for _, p := range params.Items() {
			ep.Parameters = append(ep.Parameters, extractParameter(p))
		}
	}

	if body, ok := op.Field("requestBody"); ok {
		ep.RequestBody = extractRequestBody(body)
	}

	if responses, ok := op.Field("responses"); ok {
		for _, status := range responses.Keys() {
			r, _ := responses.Field(status)
			ep.Responses = append(ep.Responses, extractResponse(status, r))
		}
	}

	return ep
}

func extractParameter(p *Value) Parameter {
	param := Parameter{}
	if name, ok := p.Field("name"); ok {
		param.Name = name.Text()
	}
	if in, ok := p.Field("in"); ok {
		param.In = in.Text()
	}
	// required defaults to false when absent
	if required, ok := p.Field("required"); ok {
		param.Required = required.Bool()
	}
	// schema defaults to {"type":"string"} when absent
	if schema, ok := p.Field("schema"); ok {
		param.Schema = schema
	} else {
		param.Schema = defaultStringSchema()
	}
	if desc, ok := p.Field("description"); ok {
		param.Description = desc.Text()
	}
	return param
}

func defaultStringSchema() *Value {
	s := Object()
	s.Set("type", String("string"))
	return s
}

func extractRequestBody(body *Value) *RequestBody {
	rb := &RequestBody{Content: []MediaType{}}
	if required, ok := body.Field("required"); ok {
		rb.Required = required.Bool()
	}
	if content, ok := body.Field("content"); ok {
		rb.Content = extractContent(content)
	}
	return rb
}

func extractResponse(status string, r *Value) Response {
	resp := Response{StatusCode: status}
	if desc, ok := r.Field("description"); ok {
		resp.Description = desc.Text()
	}
	// absent stays nil, never an empty list
	if content, ok := r.Field("content"); ok {
		if entries := extractContent(content); len(entries) > 0 {
			resp.Content = entries
		}
	}
	return resp
}

// extractContent builds one MediaType per content-type key, in document order.
func extractContent(content *Value) []MediaType {
	media := make([]MediaType, 0, content.Len())
	for _, mime := range content.Keys() {
		entry, _ := content.Field(mime)
		mt := MediaType{MimeType: mime}
		if schema, ok := entry.Field("schema"); ok {
			mt.Schema = schema
		}
		media = append(media, mt)
	}
	return media
}
