package interfaces

import (
	"context"

	"nem2/internal/wire"
)

// Transport is how we talk to a node's REST API, all with context. A nil body
// sends no payload; the decoded response body is returned as a wire value.
type Transport interface {
	Do(ctx context.Context, method, path string, body wire.Value) (wire.Value, error)
}
