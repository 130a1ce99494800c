package registry

import (
	"net/http"
	"sync"
)

// InterfaceType tags the origin of each interface entry.
type InterfaceType string

const (
	CLI  InterfaceType = "cli"
	HTTP InterfaceType = "http"
	MCP  InterfaceType = "mcp"
)

// InterfaceMeta holds metadata for a CLI command, HTTP route, or MCP tool.
type InterfaceMeta struct {
	ID          string        `json:"id"`             // unique identifier (e.g., cobra command path, HTTP route key, MCP tool name)
	Type        InterfaceType `json:"type"`           // cli|http|mcp
	Use         string        `json:"use,omitempty"`  // cobra.Use, HTTP method, or MCP tool name
	Path        string        `json:"path,omitempty"` // HTTP path, empty otherwise
	Description string        `json:"description,omitempty"`
}

var (
	mu         sync.Mutex
	interfaces []InterfaceMeta
)

// RegisterInterface adds one interface entry to the registry.
func RegisterInterface(m InterfaceMeta) {
	mu.Lock()
	defer mu.Unlock()
	interfaces = append(interfaces, m)
}

// AllInterfaces returns all registered interfaces.
func AllInterfaces() []InterfaceMeta {
	mu.Lock()
	defer mu.Unlock()
	out := make([]InterfaceMeta, len(interfaces))
	copy(out, interfaces)
	return out
}

// RegisterRoute is a helper to register an HTTP route and record it in metadata.
func RegisterRoute(mux *http.ServeMux, method, path, desc string, handler http.HandlerFunc) {
	RegisterInterface(InterfaceMeta{
		ID:          method + " " + path,
		Type:        HTTP,
		Use:         method,
		Path:        path,
		Description: desc,
	})
	mux.HandleFunc(path, handler)
}
