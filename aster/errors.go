package aster

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials indicates a request that could not be
	// authenticated because no API key/secret pair was available.
	ErrMissingCredentials = errors.New("missing api credentials")

	// ErrInvalidParams indicates arguments that fail a per-operation
	// precondition before any upstream call is attempted.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrUnknownOperation indicates a tool name absent from the catalog.
	ErrUnknownOperation = errors.New("unknown operation")
)

// APIError carries a non-2xx upstream response. Code and Message are
// populated from the exchange's {"code":..,"msg":..} payload when present;
// otherwise Message holds the raw response body.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("aster api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("aster api: status %d: %s", e.StatusCode, e.Message)
}

func newAPIError(statusCode int, body []byte) *APIError {
	result := &APIError{StatusCode: statusCode}
	var payload struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Msg != "" {
		result.Code = payload.Code
		result.Message = payload.Msg
	} else if len(body) > 0 {
		result.Message = string(body)
	}
	return result
}
