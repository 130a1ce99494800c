package adapter

import "context"

// Adapter is the interface for request-executing adapters.
type Adapter interface {
	ID() string
	Execute(ctx context.Context, inputs map[string]any) (map[string]any, error)
}
