package docgen

import (
	"github.com/Atomic-Germ/mcp-api-consumer/openapi"
	"github.com/Atomic-Germ/mcp-api-consumer/utils"
)

// markdownTemplate renders one imported specification as a Markdown
// reference: header, endpoint index table, then a section per endpoint.
const markdownTemplate = `# {{ title }}

**Version:** {{ version }}
{% if description %}
{{ description }}
{% endif %}
## Endpoints

| Method | Path | Summary |
|--------|------|---------|
{% for ep in endpoints %}| {{ ep.method }} | ` + "`{{ ep.path }}`" + ` | {{ ep.summary }} |
{% endfor %}
{% for ep in endpoints %}---

### {{ ep.method }} ` + "`{{ ep.path }}`" + `
{% if ep.summary %}
{{ ep.summary }}
{% endif %}{% if ep.operationId %}
**Operation ID:** ` + "`{{ ep.operationId }}`" + `
{% endif %}{% if ep.parameters %}
#### Parameters

| Name | In | Required | Type | Description |
|------|----|----------|------|-------------|
{% for p in ep.parameters %}| {{ p.name }} | {{ p.location }} | {{ p.required }} | {{ p.type }} | {{ p.description }} |
{% endfor %}{% endif %}{% if ep.requestBody %}
#### Request Body

Required: {{ ep.requestBody.required }}
{% for mt in ep.requestBody.content %}
**{{ mt.mimeType }}**
{% if mt.schema %}
` + "```json\n{{ mt.schema }}\n```" + `
{% endif %}{% endfor %}{% endif %}
#### Responses
{% for r in ep.responses %}
**{{ r.statusCode }}**{% if r.description %}: {{ r.description }}{% endif %}
{% for mt in r.content %}
**{{ mt.mimeType }}**
{% if mt.schema %}
` + "```json\n{{ mt.schema }}\n```" + `
{% endif %}{% endfor %}{% endfor %}
{% endfor %}`

// Markdown renders the specification as a human-readable Markdown document.
func Markdown(spec *openapi.Specification) (string, error) {
	return Render(markdownTemplate, markdownContext(spec))
}

// markdownContext flattens the specification into plain maps and lists so
// the template only deals in scalars.
func markdownContext(spec *openapi.Specification) map[string]any {
	endpoints := make([]map[string]any, 0, len(spec.Endpoints))
	for _, ep := range spec.Endpoints {
		endpoints = append(endpoints, endpointContext(ep))
	}
	return map[string]any{
		"title":       spec.Info.Title,
		"version":     spec.Info.Version,
		"description": spec.Info.Description,
		"endpoints":   endpoints,
	}
}

func endpointContext(ep openapi.Endpoint) map[string]any {
	params := make([]map[string]any, 0, len(ep.Parameters))
	for _, p := range ep.Parameters {
		// "in" is a keyword in the template language, so the
		// parameter location is exposed under a different key.
		params = append(params, map[string]any{
			"name":        p.Name,
			"location":    p.In,
			"required":    p.Required,
			"type":        schemaType(p.Schema),
			"description": p.Description,
		})
	}

	ctx := map[string]any{
		"method":      ep.Method,
		"path":        ep.Path,
		"summary":     ep.Summary,
		"operationId": ep.OperationID,
		"parameters":  params,
		"responses":   responsesContext(ep.Responses),
	}
	if ep.RequestBody != nil {
		ctx["requestBody"] = map[string]any{
			"required": ep.RequestBody.Required,
			"content":  contentContext(ep.RequestBody.Content),
		}
	}
	return ctx
}

func responsesContext(responses []openapi.Response) []map[string]any {
	out := make([]map[string]any, 0, len(responses))
	for _, r := range responses {
		out = append(out, map[string]any{
			"statusCode":  r.StatusCode,
			"description": r.Description,
			"content":     contentContext(r.Content),
		})
	}
	return out
}

func contentContext(media []openapi.MediaType) []map[string]any {
	out := make([]map[string]any, 0, len(media))
	for _, mt := range media {
		entry := map[string]any{"mimeType": mt.MimeType}
		if mt.Schema != nil {
			entry["schema"] = schemaJSON(mt.Schema)
		}
		out = append(out, entry)
	}
	return out
}

// schemaType reads the top-level type of a schema subtree for the
// parameter table; composite schemas fall back to "object".
func schemaType(schema *openapi.Value) string {
	if schema == nil {
		return ""
	}
	if typ, ok := schema.Field("type"); ok {
		return typ.Text()
	}
	return "object"
}

func schemaJSON(schema *openapi.Value) string {
	result := utils.MarshalJSONIndent(schema, "")
	if result.Err != nil {
		return ""
	}
	return string(result.Data)
}
