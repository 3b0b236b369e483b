package mcp

import (
	"context"
	"testing"

	"github.com/questflowai/aster-mcp-server/aster"
	"github.com/stretchr/testify/assert"
)

// TestServiceTools ensures that the service exposes a tool entry for every
// operation in the exchange catalog and that each entry can be resolved
// individually via LookupTool.
func TestServiceTools(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	tools := svc.Tools()
	assert.EqualValues(t, len(aster.Catalog()), len(tools))

	for _, te := range tools {
		entry, err := svc.LookupTool(te.Metadata.Name)
		if assert.NoError(t, err, "LookupTool(%q) returned error", te.Metadata.Name) {
			assert.EqualValues(t, te.Metadata.Name, entry.Metadata.Name)
		}
	}

	// Unknown names resolve to the sentinel shared with the transport layer.
	_, err = svc.LookupTool("noSuchTool")
	assert.ErrorIs(t, err, aster.ErrUnknownOperation)
}

// TestServiceToolMetadata guards the helpers backing the tool/list-tools
// CLI sub-commands.
func TestServiceToolMetadata(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	names := svc.ToolNames()
	assert.EqualValues(t, len(aster.Catalog()), len(names))
	assert.EqualValues(t, "ping", names[0])

	descriptors := svc.ToolDescriptors()
	assert.EqualValues(t, len(names), len(descriptors))
	for _, descriptor := range descriptors {
		assert.NotEmpty(t, descriptor.Description, "tool %s has no description", descriptor.Name)
	}

	description, schema, ok := svc.ToolMetadata("depth")
	assert.True(t, ok)
	assert.NotEmpty(t, description)
	assert.NotNil(t, schema)

	_, _, ok = svc.ToolMetadata("noSuchTool")
	assert.False(t, ok)
}
