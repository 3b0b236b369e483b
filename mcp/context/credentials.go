package context

import (
	"context"

	"github.com/questflowai/aster-mcp-server/aster"
)

type credentialsKey string

// CredentialsKey carries an explicit per-invocation credential pair, used by
// direct invocations where no transport auth token exists.
var CredentialsKey = credentialsKey("credentials")

// WithCredentials stores an explicit credential pair in the context.
func WithCredentials(ctx context.Context, credentials *aster.Credentials) context.Context {
	return context.WithValue(ctx, CredentialsKey, credentials)
}

// Credentials returns the explicit credential pair carried by the context.
func Credentials(ctx context.Context) (*aster.Credentials, bool) {
	value := ctx.Value(CredentialsKey)
	if value == nil {
		return nil, false
	}
	credentials, ok := value.(*aster.Credentials)
	return credentials, ok
}
