package aster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	testCases := []struct {
		description string
		secret      string
		payload     string
		expect      string
	}{
		{
			description: "binance-compatible documentation vector",
			secret:      "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j",
			payload:     "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559",
			expect:      "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71",
		},
		{
			description: "empty payload",
			secret:      "secret",
			payload:     "",
			expect:      "f9e66e179b6747ae54108f82f8ade8b3c25d76fd30afde6c395822c530196169",
		},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, Sign(testCase.secret, testCase.payload), testCase.description)
	}
}

func TestSignDistinct(t *testing.T) {
	assert.NotEqual(t, Sign("S", "symbol=BTCUSDT"), Sign("S", "symbol=ETHUSDT"))
	assert.NotEqual(t, Sign("S1", "symbol=BTCUSDT"), Sign("S2", "symbol=BTCUSDT"))
}

func TestEncodeParameters(t *testing.T) {
	testCases := []struct {
		description string
		parameters  []Parameter
		expect      string
	}{
		{
			description: "empty",
			expect:      "",
		},
		{
			description: "preserves insertion order",
			parameters:  []Parameter{{Key: "symbol", Value: "BTCUSDT"}, {Key: "limit", Value: "10"}},
			expect:      "symbol=BTCUSDT&limit=10",
		},
		{
			description: "url-encodes values",
			parameters:  []Parameter{{Key: "batchOrders", Value: `[{"symbol":"BTCUSDT"}]`}},
			expect:      "batchOrders=%5B%7B%22symbol%22%3A%22BTCUSDT%22%7D%5D",
		},
		{
			description: "escapes spaces",
			parameters:  []Parameter{{Key: "note", Value: "a b"}},
			expect:      "note=a+b",
		},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, EncodeParameters(testCase.parameters), testCase.description)
	}
}
