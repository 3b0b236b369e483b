package aster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the production Aster futures API host.
const DefaultBaseURL = "https://fapi.asterdex.com"

// APIKeyHeader carries the caller's API key on signed requests.
const APIKeyHeader = "X-MBX-APIKEY"

// Credentials holds one API key/secret pair scoped to a single invocation.
// Pairs are never cached, logged or written anywhere.
type Credentials struct {
	Key    string
	Secret string
}

// ParseCredentials extracts a key/secret pair from a colon-delimited auth
// token. The token must have exactly two non-empty parts.
func ParseCredentials(token string) (*Credentials, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: auth token is not a key:secret pair", ErrMissingCredentials)
	}
	return &Credentials{Key: parts[0], Secret: parts[1]}, nil
}

// Clock supplies the current time; swapped in tests for deterministic timestamps.
type Clock func() time.Time

// Client issues requests against the exchange REST API. All fields are set
// at construction time and never mutated, so a single instance serves
// concurrent invocations.
type Client struct {
	baseURL    string
	httpClient *http.Client
	clock      Clock
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithClock overrides the timestamp source used for signing.
func WithClock(clock Clock) Option {
	return func(c *Client) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// NewClient creates a Client for the given base URL; an empty URL selects
// the production host.
func NewClient(baseURL string, options ...Option) *Client {
	result := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
		clock:      time.Now,
	}
	if result.baseURL == "" {
		result.baseURL = DefaultBaseURL
	}
	for _, option := range options {
		option(result)
	}
	return result
}

// BaseURL returns the configured API host.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Invoke executes one catalog operation and returns the raw upstream
// response body. Signed definitions require credentials; unsigned ones
// ignore them entirely, so no credential material leaks into public
// market-data calls.
func (c *Client) Invoke(ctx context.Context, def *Definition, args map[string]interface{}, credentials *Credentials) ([]byte, error) {
	if err := validateArguments(def, args); err != nil {
		return nil, err
	}
	parameters, err := buildParameters(def, args)
	if err != nil {
		return nil, err
	}
	if def.Signed {
		if credentials == nil || credentials.Key == "" || credentials.Secret == "" {
			return nil, fmt.Errorf("%w: %v requires signing", ErrMissingCredentials, def.Name)
		}
		parameters = append(parameters, Parameter{Key: "timestamp", Value: strconv.FormatInt(c.clock().UnixMilli(), 10)})
		payload := EncodeParameters(parameters)
		parameters = append(parameters, Parameter{Key: "signature", Value: Sign(credentials.Secret, payload)})
	}
	request, err := c.newRequest(ctx, def, EncodeParameters(parameters))
	if err != nil {
		return nil, err
	}
	if def.Signed {
		request.Header.Set(APIKeyHeader, credentials.Key)
	}
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v response: %w", def.Name, err)
	}
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(response.StatusCode, body)
	}
	return body, nil
}

// newRequest places the encoded parameters where the upstream expects them:
// POST sends a form body, every other method sends query parameters.
func (c *Client) newRequest(ctx context.Context, def *Definition, encoded string) (*http.Request, error) {
	if def.Method == http.MethodPost {
		request, err := http.NewRequestWithContext(ctx, def.Method, c.baseURL+def.Path, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return request, nil
	}
	URL := c.baseURL + def.Path
	if encoded != "" {
		URL += "?" + encoded
	}
	return http.NewRequestWithContext(ctx, def.Method, URL, nil)
}

// validateArguments enforces the per-operation preconditions the upstream
// rejects with opaque errors: batch endpoints need their composite list
// arguments up front.
func validateArguments(def *Definition, args map[string]interface{}) error {
	switch def.Name {
	case "placeBatchOrders":
		if !hasArgument(args, "batchOrders") {
			return fmt.Errorf("%w: batchOrders is required", ErrInvalidParams)
		}
	case "cancelBatchOrders":
		if !hasArgument(args, "orderIdList") && !hasArgument(args, "origClientOrderIdList") {
			return fmt.Errorf("%w: either orderIdList or origClientOrderIdList is required", ErrInvalidParams)
		}
	}
	return nil
}

func hasArgument(args map[string]interface{}, name string) bool {
	value, ok := args[name]
	return ok && value != nil
}

// buildParameters flattens the argument map into ordered key/value pairs:
// declared parameters first, in catalog order, then any undeclared extras
// in sorted order so the canonical query stays deterministic.
func buildParameters(def *Definition, args map[string]interface{}) ([]Parameter, error) {
	result := make([]Parameter, 0, len(args)+2)
	declared := make(map[string]bool, len(def.Params))
	for i := range def.Params {
		param := &def.Params[i]
		declared[param.Name] = true
		value, ok := args[param.Name]
		if !ok || value == nil {
			continue
		}
		text, err := formatValue(value, param.JSONEncoded)
		if err != nil {
			return nil, fmt.Errorf("%w: unsupported %v value: %v", ErrInvalidParams, param.Name, err)
		}
		result = append(result, Parameter{Key: param.Name, Value: text})
	}
	var extras []string
	for name, value := range args {
		if !declared[name] && value != nil {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		text, err := formatValue(args[name], false)
		if err != nil {
			return nil, fmt.Errorf("%w: unsupported %v value: %v", ErrInvalidParams, name, err)
		}
		result = append(result, Parameter{Key: name, Value: text})
	}
	return result, nil
}

// formatValue renders an argument as upstream text. Scalars keep their JSON
// literal form (floats without exponent notation, so quantities survive the
// round trip); composites marshal to compact JSON.
func formatValue(value interface{}, jsonEncoded bool) (string, error) {
	if jsonEncoded {
		data, err := json.Marshal(value)
		return string(data), err
	}
	switch actual := value.(type) {
	case string:
		return actual, nil
	case bool:
		return strconv.FormatBool(actual), nil
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), nil
	case json.Number:
		return actual.String(), nil
	case int:
		return strconv.Itoa(actual), nil
	case int64:
		return strconv.FormatInt(actual, 10), nil
	default:
		data, err := json.Marshal(value)
		return string(data), err
	}
}
