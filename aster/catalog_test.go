package aster

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	defs := Catalog()
	assert.EqualValues(t, 45, len(defs))
	seen := map[string]bool{}
	for _, def := range defs {
		assert.False(t, seen[def.Name], "duplicate tool name %v", def.Name)
		seen[def.Name] = true
		assert.NotEmpty(t, def.Description, def.Name)
		assert.True(t, strings.HasPrefix(def.Path, "/fapi/"), def.Name)
		switch def.Method {
		case http.MethodGet, http.MethodPost, http.MethodDelete:
		default:
			t.Errorf("unexpected method %v for %v", def.Method, def.Name)
		}
		if def.Method != http.MethodGet {
			assert.True(t, def.Signed, "%v mutates state and must be signed", def.Name)
		}
		params := map[string]bool{}
		for i := range def.Params {
			param := &def.Params[i]
			assert.False(t, params[param.Name], "duplicate param %v.%v", def.Name, param.Name)
			params[param.Name] = true
			assert.NotEmpty(t, param.Type, "%v.%v", def.Name, param.Name)
			if param.JSONEncoded {
				assert.EqualValues(t, "array", param.Type, "%v.%v", def.Name, param.Name)
			}
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	for _, def := range Catalog() {
		assert.Same(t, def, Lookup(def.Name))
	}
	assert.Nil(t, Lookup("nope"))
}

func TestCatalogPinnedEntries(t *testing.T) {
	depth := Lookup("depth")
	require.NotNil(t, depth)
	assert.EqualValues(t, http.MethodGet, depth.Method)
	assert.EqualValues(t, "/fapi/v1/depth", depth.Path)
	assert.False(t, depth.Signed)
	assert.EqualValues(t, []string{"symbol"}, depth.RequiredParams())

	placeOrder := Lookup("placeOrder")
	require.NotNil(t, placeOrder)
	assert.EqualValues(t, http.MethodPost, placeOrder.Method)
	assert.EqualValues(t, "/fapi/v1/order", placeOrder.Path)
	assert.True(t, placeOrder.Signed)
	assert.EqualValues(t, []string{"symbol", "side", "type"}, placeOrder.RequiredParams())

	batch := Lookup("placeBatchOrders")
	require.NotNil(t, batch)
	batchOrders := batch.Param("batchOrders")
	require.NotNil(t, batchOrders)
	assert.True(t, batchOrders.Required)
	assert.True(t, batchOrders.JSONEncoded)

	cancelBatch := Lookup("cancelBatchOrders")
	require.NotNil(t, cancelBatch)
	assert.EqualValues(t, http.MethodDelete, cancelBatch.Method)
	for _, name := range []string{"orderIdList", "origClientOrderIdList"} {
		param := cancelBatch.Param(name)
		require.NotNil(t, param, name)
		assert.True(t, param.JSONEncoded, name)
		assert.False(t, param.Required, name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	assert.EqualValues(t, len(Catalog()), len(names))
	assert.EqualValues(t, "ping", names[0])
}
