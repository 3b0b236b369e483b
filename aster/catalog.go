package aster

import "net/http"

var klineIntervals = []string{"1m", "3m", "5m", "15m", "30m", "1h", "2h", "4h", "6h", "8h", "12h", "1d", "3d", "1w", "1M"}

func symbolParam(required bool) Param {
	return Param{Name: "symbol", Type: "string", Required: required, Description: "Trading pair symbol, e.g. BTCUSDT"}
}

func intervalParam() Param {
	return Param{Name: "interval", Type: "string", Required: true, Enum: klineIntervals, Description: "Candlestick interval"}
}

func limitParam(description string) Param {
	return Param{Name: "limit", Type: "integer", Description: description}
}

var (
	startTimeParam  = Param{Name: "startTime", Type: "integer", Description: "Start of the time range, Unix milliseconds"}
	endTimeParam    = Param{Name: "endTime", Type: "integer", Description: "End of the time range, Unix milliseconds"}
	recvWindowParam = Param{Name: "recvWindow", Type: "integer", Description: "Validity window of the signed request in milliseconds"}
)

// definitions lists every exposed operation in declaration order: market
// data, then trading, then account. The order of each Params slice fixes the
// canonical query layout, following the upstream API documentation.
var definitions = []*Definition{

	// Market data (unsigned).
	{
		Name:        "ping",
		Description: "Test connectivity to the futures REST API",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/ping",
	},
	{
		Name:        "time",
		Description: "Get the current server time",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/time",
	},
	{
		Name:        "exchangeInfo",
		Description: "Get current exchange trading rules and symbol information",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/exchangeInfo",
	},
	{
		Name:        "depth",
		Description: "Get the order book for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/depth",
		Params: []Param{
			symbolParam(true),
			limitParam("Depth limit (default 500; valid 5, 10, 20, 50, 100, 500, 1000)"),
		},
	},
	{
		Name:        "trades",
		Description: "Get recent market trades for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/trades",
		Params: []Param{
			symbolParam(true),
			limitParam("Number of trades to return (default 500, max 1000)"),
		},
	},
	{
		Name:        "historicalTrades",
		Description: "Get older market trades for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/historicalTrades",
		Params: []Param{
			symbolParam(true),
			limitParam("Number of trades to return (default 500, max 1000)"),
			{Name: "fromId", Type: "integer", Description: "Trade id to fetch from; defaults to the most recent trades"},
		},
	},
	{
		Name:        "aggTrades",
		Description: "Get compressed, aggregate market trades for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/aggTrades",
		Params: []Param{
			symbolParam(true),
			{Name: "fromId", Type: "integer", Description: "Aggregate trade id to fetch from, inclusive"},
			startTimeParam,
			endTimeParam,
			limitParam("Number of trades to return (default 500, max 1000)"),
		},
	},
	{
		Name:        "klines",
		Description: "Get candlestick bars for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/klines",
		Params: []Param{
			symbolParam(true),
			intervalParam(),
			startTimeParam,
			endTimeParam,
			limitParam("Number of bars to return (default 500, max 1500)"),
		},
	},
	{
		Name:        "indexPriceKlines",
		Description: "Get index price candlestick bars for a pair",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/indexPriceKlines",
		Params: []Param{
			{Name: "pair", Type: "string", Required: true, Description: "Underlying pair, e.g. BTCUSDT"},
			intervalParam(),
			startTimeParam,
			endTimeParam,
			limitParam("Number of bars to return (default 500, max 1500)"),
		},
	},
	{
		Name:        "markPriceKlines",
		Description: "Get mark price candlestick bars for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/markPriceKlines",
		Params: []Param{
			symbolParam(true),
			intervalParam(),
			startTimeParam,
			endTimeParam,
			limitParam("Number of bars to return (default 500, max 1500)"),
		},
	},
	{
		Name:        "premiumIndex",
		Description: "Get the mark price and funding rate for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/premiumIndex",
		Params: []Param{
			symbolParam(false),
		},
	},
	{
		Name:        "fundingRate",
		Description: "Get funding rate history",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/fundingRate",
		Params: []Param{
			symbolParam(false),
			startTimeParam,
			endTimeParam,
			limitParam("Number of entries to return (default 100, max 1000)"),
		},
	},
	{
		Name:        "ticker24hr",
		Description: "Get 24 hour rolling window price change statistics",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/ticker/24hr",
		Params: []Param{
			symbolParam(false),
		},
	},
	{
		Name:        "tickerPrice",
		Description: "Get the latest price for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/ticker/price",
		Params: []Param{
			symbolParam(false),
		},
	},
	{
		Name:        "bookTicker",
		Description: "Get the best bid and ask price and quantity for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/ticker/bookTicker",
		Params: []Param{
			symbolParam(false),
		},
	},
	{
		Name:        "openInterest",
		Description: "Get the present open interest for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/openInterest",
		Params: []Param{
			symbolParam(true),
		},
	},

	// Trading (signed).
	{
		Name:        "placeOrder",
		Description: "Place a new order",
		Method:      http.MethodPost,
		Path:        "/fapi/v1/order",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			{Name: "side", Type: "string", Required: true, Enum: []string{"BUY", "SELL"}, Description: "Order side"},
			{Name: "positionSide", Type: "string", Enum: []string{"BOTH", "LONG", "SHORT"}, Description: "Position side; default BOTH in one-way mode, required in hedge mode"},
			{Name: "type", Type: "string", Required: true, Enum: []string{"LIMIT", "MARKET", "STOP", "STOP_MARKET", "TAKE_PROFIT", "TAKE_PROFIT_MARKET", "TRAILING_STOP_MARKET"}, Description: "Order type"},
			{Name: "timeInForce", Type: "string", Enum: []string{"GTC", "IOC", "FOK", "GTX"}, Description: "Time in force; required for LIMIT orders"},
			{Name: "quantity", Type: "number", Description: "Order quantity; cannot be sent with closePosition=true"},
			{Name: "reduceOnly", Type: "boolean", Description: "Reduce-only flag; cannot be sent in hedge mode or with closePosition=true"},
			{Name: "price", Type: "number", Description: "Limit price"},
			{Name: "newClientOrderId", Type: "string", Description: "Client order id, unique among open orders; generated when absent"},
			{Name: "stopPrice", Type: "number", Description: "Trigger price for STOP and TAKE_PROFIT order types"},
			{Name: "closePosition", Type: "boolean", Description: "Close the whole position; used with STOP_MARKET or TAKE_PROFIT_MARKET"},
			{Name: "activationPrice", Type: "number", Description: "Activation price for TRAILING_STOP_MARKET; defaults to the latest price"},
			{Name: "callbackRate", Type: "number", Description: "Callback rate for TRAILING_STOP_MARKET in percent, 0.1 to 5"},
			{Name: "workingType", Type: "string", Enum: []string{"MARK_PRICE", "CONTRACT_PRICE"}, Description: "Price type the stop trigger watches; default CONTRACT_PRICE"},
			{Name: "priceProtect", Type: "boolean", Description: "Price protection for STOP and TAKE_PROFIT order types"},
			{Name: "newOrderRespType", Type: "string", Enum: []string{"ACK", "RESULT"}, Description: "Response detail level; default ACK"},
			recvWindowParam,
		},
	},
	{
		Name:        "placeBatchOrders",
		Description: "Place multiple orders in one request",
		Method:      http.MethodPost,
		Path:        "/fapi/v1/batchOrders",
		Signed:      true,
		Params: []Param{
			{Name: "batchOrders", Type: "array", Required: true, Items: "object", JSONEncoded: true, Description: "Up to 5 order payloads with the same fields as placeOrder"},
			recvWindowParam,
		},
	},
	{
		Name:        "transferAsset",
		Description: "Transfer assets between spot and futures wallets",
		Method:      http.MethodPost,
		Path:        "/fapi/v3/asset/wallet/transfer",
		Signed:      true,
		Params: []Param{
			{Name: "amount", Type: "number", Required: true, Description: "Amount to transfer"},
			{Name: "asset", Type: "string", Required: true, Description: "Asset to transfer, e.g. USDT"},
			{Name: "clientTranId", Type: "string", Required: true, Description: "Client transaction id, unique within 7 days"},
			{Name: "kindType", Type: "string", Required: true, Enum: []string{"FUTURE_SPOT", "SPOT_FUTURE"}, Description: "Transfer direction"},
		},
	},
	{
		Name:        "queryOrder",
		Description: "Query an order's status",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/order",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			{Name: "orderId", Type: "integer", Description: "Order id; either orderId or origClientOrderId must be sent"},
			{Name: "origClientOrderId", Type: "string", Description: "Client order id; either orderId or origClientOrderId must be sent"},
			recvWindowParam,
		},
	},
	{
		Name:        "cancelOrder",
		Description: "Cancel an active order",
		Method:      http.MethodDelete,
		Path:        "/fapi/v1/order",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			{Name: "orderId", Type: "integer", Description: "Order id; either orderId or origClientOrderId must be sent"},
			{Name: "origClientOrderId", Type: "string", Description: "Client order id; either orderId or origClientOrderId must be sent"},
			recvWindowParam,
		},
	},
	{
		Name:        "cancelAllOrders",
		Description: "Cancel all open orders on a symbol",
		Method:      http.MethodDelete,
		Path:        "/fapi/v1/allOpenOrders",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			recvWindowParam,
		},
	},
	{
		Name:        "cancelBatchOrders",
		Description: "Cancel multiple orders by order id or client order id",
		Method:      http.MethodDelete,
		Path:        "/fapi/v1/batchOrders",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			{Name: "orderIdList", Type: "array", Items: "integer", JSONEncoded: true, Description: "Up to 10 order ids; either this or origClientOrderIdList must be sent"},
			{Name: "origClientOrderIdList", Type: "array", Items: "string", JSONEncoded: true, Description: "Up to 10 client order ids; either this or orderIdList must be sent"},
			recvWindowParam,
		},
	},
	{
		Name:        "countdownCancelAll",
		Description: "Arm a countdown that cancels all open orders on a symbol when it expires",
		Method:      http.MethodPost,
		Path:        "/fapi/v1/countdownCancelAll",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			{Name: "countdownTime", Type: "integer", Required: true, Description: "Countdown in milliseconds; 0 disarms the countdown"},
		},
	},
	{
		Name:        "openOrder",
		Description: "Query a current open order",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/openOrder",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			{Name: "orderId", Type: "integer", Description: "Order id; either orderId or origClientOrderId must be sent"},
			{Name: "origClientOrderId", Type: "string", Description: "Client order id; either orderId or origClientOrderId must be sent"},
		},
	},
	{
		Name:        "openOrders",
		Description: "Get all open orders, optionally for a single symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/openOrders",
		Signed:      true,
		Params: []Param{
			symbolParam(false),
		},
	},
	{
		Name:        "allOrders",
		Description: "Get all account orders for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/allOrders",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			{Name: "orderId", Type: "integer", Description: "Return orders with id greater than or equal to orderId"},
			startTimeParam,
			endTimeParam,
			limitParam("Number of orders to return (default 500, max 1000)"),
		},
	},
	{
		Name:        "changeLeverage",
		Description: "Change the initial leverage for a symbol",
		Method:      http.MethodPost,
		Path:        "/fapi/v1/leverage",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			{Name: "leverage", Type: "integer", Required: true, Description: "Target initial leverage, 1 to 125"},
		},
	},
	{
		Name:        "changeMarginType",
		Description: "Switch a symbol between cross and isolated margin",
		Method:      http.MethodPost,
		Path:        "/fapi/v1/marginType",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			{Name: "marginType", Type: "string", Required: true, Enum: []string{"ISOLATED", "CROSSED"}, Description: "Margin type"},
		},
	},
	{
		Name:        "updatePositionMargin",
		Description: "Add or reduce isolated position margin",
		Method:      http.MethodPost,
		Path:        "/fapi/v1/positionMargin",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			{Name: "positionSide", Type: "string", Enum: []string{"BOTH", "LONG", "SHORT"}, Description: "Position side; default BOTH in one-way mode, required in hedge mode"},
			{Name: "amount", Type: "number", Required: true, Description: "Margin amount"},
			{Name: "type", Type: "integer", Required: true, Description: "1: add position margin, 2: reduce position margin"},
		},
	},
	{
		Name:        "positionMarginHistory",
		Description: "Get the position margin change history for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/positionMargin/history",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			{Name: "type", Type: "integer", Description: "1: add position margin, 2: reduce position margin"},
			startTimeParam,
			endTimeParam,
			limitParam("Number of entries to return (default 500)"),
		},
	},
	{
		Name:        "changePositionMode",
		Description: "Switch the account between one-way and hedge position mode",
		Method:      http.MethodPost,
		Path:        "/fapi/v1/positionSide/dual",
		Signed:      true,
		Params: []Param{
			{Name: "dualSidePosition", Type: "boolean", Required: true, Description: "true: hedge mode, false: one-way mode"},
		},
	},
	{
		Name:        "getPositionMode",
		Description: "Get the account's current position mode",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/positionSide/dual",
		Signed:      true,
	},
	{
		Name:        "changeMultiAssetsMode",
		Description: "Switch the account between single-asset and multi-assets margin mode",
		Method:      http.MethodPost,
		Path:        "/fapi/v1/multiAssetsMargin",
		Signed:      true,
		Params: []Param{
			{Name: "multiAssetsMargin", Type: "boolean", Required: true, Description: "true: multi-assets mode, false: single-asset mode"},
		},
	},
	{
		Name:        "getMultiAssetsMode",
		Description: "Get the account's current multi-assets margin mode",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/multiAssetsMargin",
		Signed:      true,
	},

	// Account (signed).
	{
		Name:        "balance",
		Description: "Get futures account balances",
		Method:      http.MethodGet,
		Path:        "/fapi/v2/balance",
		Signed:      true,
	},
	{
		Name:        "account",
		Description: "Get current account information including positions",
		Method:      http.MethodGet,
		Path:        "/fapi/v2/account",
		Signed:      true,
	},
	{
		Name:        "positionRisk",
		Description: "Get position risk information, optionally for a single symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v2/positionRisk",
		Signed:      true,
		Params: []Param{
			symbolParam(false),
		},
	},
	{
		Name:        "userTrades",
		Description: "Get the account's trades for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/userTrades",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
			startTimeParam,
			endTimeParam,
			{Name: "fromId", Type: "integer", Description: "Trade id to fetch from; defaults to the most recent trades"},
			limitParam("Number of trades to return (default 500, max 1000)"),
		},
	},
	{
		Name:        "income",
		Description: "Get the account's income history",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/income",
		Signed:      true,
		Params: []Param{
			symbolParam(false),
			{Name: "incomeType", Type: "string", Enum: []string{"TRANSFER", "WELCOME_BONUS", "REALIZED_PNL", "FUNDING_FEE", "COMMISSION", "INSURANCE_CLEAR", "MARKET_MERCHANT_RETURN_REWARD"}, Description: "Income type filter"},
			startTimeParam,
			endTimeParam,
			limitParam("Number of entries to return (default 100, max 1000)"),
		},
	},
	{
		Name:        "leverageBracket",
		Description: "Get the notional and leverage brackets, optionally for a single symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/leverageBracket",
		Signed:      true,
		Params: []Param{
			symbolParam(false),
		},
	},
	{
		Name:        "adlQuantile",
		Description: "Get the position ADL quantile estimation, optionally for a single symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/adlQuantile",
		Signed:      true,
		Params: []Param{
			symbolParam(false),
		},
	},
	{
		Name:        "forceOrders",
		Description: "Get the account's force-liquidation orders",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/forceOrders",
		Signed:      true,
		Params: []Param{
			symbolParam(false),
			{Name: "autoCloseType", Type: "string", Enum: []string{"LIQUIDATION", "ADL"}, Description: "Force close type; returns both when omitted"},
			startTimeParam,
			endTimeParam,
			limitParam("Number of orders to return (default 50, max 100)"),
		},
	},
	{
		Name:        "apiTradingStatus",
		Description: "Get the account's trading quantitative rules indicators",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/apiTradingStatus",
		Signed:      true,
		Params: []Param{
			symbolParam(false),
		},
	},
	{
		Name:        "commissionRate",
		Description: "Get the account's commission rate for a symbol",
		Method:      http.MethodGet,
		Path:        "/fapi/v1/commissionRate",
		Signed:      true,
		Params: []Param{
			symbolParam(true),
		},
	},
}

var index = buildIndex()

func buildIndex() map[string]*Definition {
	result := make(map[string]*Definition, len(definitions))
	for _, def := range definitions {
		if _, ok := result[def.Name]; ok {
			panic("aster: duplicate tool name " + def.Name)
		}
		result[def.Name] = def
	}
	return result
}

// Catalog returns every definition in declaration order. The returned slice
// is shared and read-only for callers.
func Catalog() []*Definition {
	return definitions
}

// Lookup returns the definition registered under name, or nil when unknown.
func Lookup(name string) *Definition {
	return index[name]
}

// Names returns every tool name in catalog order.
func Names() []string {
	result := make([]string, 0, len(definitions))
	for _, def := range definitions {
		result = append(result, def.Name)
	}
	return result
}
