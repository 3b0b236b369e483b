package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/questflowai/aster-mcp-server/aster"
	"github.com/questflowai/aster-mcp-server/internal/conv"
	"github.com/questflowai/aster-mcp-server/internal/logger"
	mcpcontext "github.com/questflowai/aster-mcp-server/mcp/context"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// newToolEntry builds the MCP tool entry for one catalog definition. The
// handler closes over the shared exchange client; credentials are resolved
// per invocation and never stored.
func (s *Service) newToolEntry(def *aster.Definition) *serverproto.ToolEntry {
	return &serverproto.ToolEntry{
		Metadata: mcpschema.Tool{
			Name:        def.Name,
			Description: conv.Pointer(def.Description),
			InputSchema: inputSchema(def),
		},
		Handler: s.newToolHandler(def),
	}
}

// inputSchema exposes the declared parameters verbatim so clients can
// validate arguments and render forms. Dispatch does not re-validate against
// this schema; the catalog's per-tool preconditions are enforced instead.
func inputSchema(def *aster.Definition) mcpschema.ToolInputSchema {
	schema := mcpschema.ToolInputSchema{
		Type:       "object",
		Properties: map[string]map[string]interface{}{},
	}
	for i := range def.Params {
		param := &def.Params[i]
		property := map[string]interface{}{"type": param.Type}
		if param.Description != "" {
			property["description"] = param.Description
		}
		if len(param.Enum) > 0 {
			property["enum"] = param.Enum
		}
		if param.Items != "" {
			property["items"] = map[string]interface{}{"type": param.Items}
		}
		schema.Properties[param.Name] = property
		if param.Required {
			schema.Required = append(schema.Required, param.Name)
		}
	}
	return schema
}

func (s *Service) newToolHandler(def *aster.Definition) func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	log := logger.ForComponent("dispatch")
	return func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		invocationID := uuid.New().String()
		credentials, err := s.resolveCredentials(ctx)
		if err != nil {
			log.Warn("credential resolution failed", "invocation", invocationID, "tool", def.Name, "error", err)
			return nil, jsonrpc.NewError(jsonrpc.InvalidRequest, err.Error(), nil)
		}
		args := map[string]interface{}(request.Params.Arguments)
		log.Debug("dispatching", "invocation", invocationID, "tool", def.Name, "signed", def.Signed)
		body, err := s.client.Invoke(ctx, def, args, credentials)
		if err != nil {
			log.Debug("dispatch failed", "invocation", invocationID, "tool", def.Name, "error", err)
			return nil, mapError(err)
		}
		log.Debug("dispatched", "invocation", invocationID, "tool", def.Name, "bytes", len(body))
		return textResult(body), nil
	}
}

// resolveCredentials yields the invocation's key/secret pair: an explicit
// context pair wins, then the transport auth token, then static
// configuration. Every call needs a resolvable pair, including unsigned
// market-data operations where the pair goes unused; a present but malformed
// token is rejected rather than falling through.
func (s *Service) resolveCredentials(ctx context.Context) (*aster.Credentials, error) {
	if credentials, ok := mcpcontext.Credentials(ctx); ok && credentials != nil {
		return credentials, nil
	}
	if token, ok := mcpcontext.AuthToken(ctx); ok {
		return aster.ParseCredentials(strings.TrimPrefix(token, "Bearer "))
	}
	static := s.config.Credentials
	if static != nil && static.Key != "" && static.Secret != "" {
		return &aster.Credentials{Key: static.Key, Secret: static.Secret}, nil
	}
	return nil, aster.ErrMissingCredentials
}

// mapError classifies dispatch failures onto protocol error codes.
func mapError(err error) *jsonrpc.Error {
	switch {
	case errors.Is(err, aster.ErrMissingCredentials):
		return jsonrpc.NewError(jsonrpc.InvalidRequest, err.Error(), nil)
	case errors.Is(err, aster.ErrInvalidParams):
		return jsonrpc.NewError(jsonrpc.InvalidParams, err.Error(), nil)
	case errors.Is(err, aster.ErrUnknownOperation):
		return jsonrpc.NewError(jsonrpc.MethodNotFound, err.Error(), nil)
	}
	return jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
}

// textResult wraps an upstream payload into the single-element text envelope.
func textResult(body []byte) *mcpschema.CallToolResult {
	return &mcpschema.CallToolResult{Content: []mcpschema.CallToolResultContentElem{{
		Type: "text",
		Text: prettyJSON(body),
	}}}
}

// prettyJSON indents a JSON document without reordering its keys; non-JSON
// payloads come back unchanged.
func prettyJSON(body []byte) string {
	var buffer bytes.Buffer
	if err := json.Indent(&buffer, body, "", "  "); err != nil {
		return string(body)
	}
	return buffer.String()
}
