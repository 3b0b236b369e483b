package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestServiceMatchTools verifies that the MatchTools helper applies the same
// pattern-matching semantics as the list-tools CLI filter (see matcher).
func TestServiceMatchTools(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	// 1. '*' should return the full registry.
	all := svc.Tools()
	star := svc.MatchTools("*")
	assert.EqualValues(t, len(all), len(star))

	// 2. Prefix patterns narrow the set.
	cancels := svc.MatchTools("cancel")
	assert.EqualValues(t, 3, len(cancels))
	for _, te := range cancels {
		assert.Contains(t, te.Metadata.Name, "cancel")
	}

	tickers := svc.MatchTools("ticker")
	assert.EqualValues(t, 2, len(tickers))

	// 3. Exact match should return a single entry.
	exact := svc.MatchTools("placeOrder")
	assert.EqualValues(t, 1, len(exact))
	assert.EqualValues(t, "placeOrder", exact[0].Metadata.Name)

	// 4. Unmatched patterns yield an empty set.
	assert.Empty(t, svc.MatchTools("noSuchPrefix"))
}
