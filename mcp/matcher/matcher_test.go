package matcher

import "testing"

func TestMatch(t *testing.T) {
	var testCases = []struct {
		pattern   string
		candidate string
		matched   bool
	}{
		{"*", "anything", true},
		{"", "anything", false},

		// Exact matches
		{"placeOrder", "placeOrder", true},
		{"placeOrder", "placeBatchOrders", false},

		// Prefix matches
		{"place", "placeOrder", true},
		{"place", "placeBatchOrders", true},
		{"ticker", "tickerPrice", true},
		{"cancelAll", "cancelOrder", false},

		// Matching is case sensitive
		{"Place", "placeOrder", false},
	}

	for i, tc := range testCases {
		if got := Match(tc.pattern, tc.candidate); got != tc.matched {
			t.Fatalf("[%d] Match(%q, %q) = %v; expected %v", i, tc.pattern, tc.candidate, got, tc.matched)
		}
	}
}
