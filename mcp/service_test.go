package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/questflowai/aster-mcp-server/aster"
	"github.com/questflowai/aster-mcp-server/mcp/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// TestServiceRoundTrip drives the service through the same client/server
// plumbing a real MCP consumer would use: an in-process server built from
// NewHandler, queried over the SDK client interface.
func TestServiceRoundTrip(t *testing.T) {
	ctx := context.Background()

	upstream := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{"serverTime":1700000000000}`))
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		Exchange:    &config.Exchange{BaseURL: upstream.URL},
		Credentials: &config.Credentials{Key: "K", Secret: "S"},
	}
	svc, err := NewWithConfig(ctx, cfg)
	require.NoError(t, err)

	mcpServer, err := svc.NewServer(ctx)
	require.NoError(t, err)
	cli := mcpServer.AsClient(ctx)

	// Fetch all advertised tools (paging supported).
	tools := make([]mcpschema.Tool, 0)
	var cursor *string
	for {
		res, err := cli.ListTools(ctx, cursor)
		require.NoError(t, err)
		tools = append(tools, res.Tools...)
		if res.NextCursor == nil || *res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	assert.EqualValues(t, len(aster.Catalog()), len(tools))

	byName := make(map[string]*mcpschema.Tool, len(tools))
	for i := range tools {
		byName[tools[i].Name] = &tools[i]
	}
	depth, ok := byName["depth"]
	require.True(t, ok, "expected depth tool to be advertised")
	assert.Contains(t, depth.InputSchema.Required, "symbol")
	if assert.NotNil(t, depth.Description) {
		assert.NotEmpty(t, *depth.Description)
	}

	// Invoke one operation end to end through the client.
	result, err := cli.CallTool(ctx, &mcpschema.CallToolRequestParams{Name: "time"})
	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	assert.Contains(t, result.Content[0].Text, "serverTime")
}
