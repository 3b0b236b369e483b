// Package context carries per-invocation authentication material through
// request contexts: the transport-level auth token set by the MCP transport,
// and an explicit credential pair for direct (CLI) invocations.
package context

import (
	"context"

	"github.com/viant/mcp/client/auth/transport"
)

// WithAuthToken stores a transport-level auth token (the Authorization
// header value) under the SDK's token key.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, transport.ContextAuthTokenKey, token)
}

// AuthToken returns the transport-level auth token carried by the context.
// For this server the token is expected to be a colon-delimited key:secret
// pair.
func AuthToken(ctx context.Context) (string, bool) {
	value := ctx.Value(transport.ContextAuthTokenKey)
	if value == nil {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}
