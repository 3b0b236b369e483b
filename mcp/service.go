package mcp

import (
	"context"
	"net/http"
	"time"

	"github.com/questflowai/aster-mcp-server/aster"
	"github.com/questflowai/aster-mcp-server/internal/conv"
	"github.com/questflowai/aster-mcp-server/internal/syncmap"
	"github.com/questflowai/aster-mcp-server/mcp/config"
	"github.com/questflowai/aster-mcp-server/mcp/matcher"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Service bundles configuration, the exchange client and the MCP tool
// entries derived from the operation catalog. All heavy lifting during
// instantiation lives in bootstrap.go to keep this file focused on the
// public surface.
type Service struct {
	config     *config.Config
	client     *aster.Client
	httpClient *http.Client
	clock      aster.Clock
	started    time.Time

	// Entries in catalog order plus a name index; both are built once
	// during bootstrap and shared by every connection handler.
	entries []*serverproto.ToolEntry
	index   *syncmap.Map[*serverproto.ToolEntry]
}

// Config returns the effective configuration instance passed to the service
// at construction time.  Callers must treat the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Client returns the exchange client the service dispatches through.
func (s *Service) Client() *aster.Client { return s.client }

// Uptime returns how long ago the service was constructed.
func (s *Service) Uptime() time.Duration { return time.Since(s.started) }

// Tools returns every registered tool entry in catalog order. The slice is a
// copy and therefore safe for callers to modify.
func (s *Service) Tools() serverproto.Tools {
	result := make(serverproto.Tools, len(s.entries))
	copy(result, s.entries)
	return result
}

// LookupTool returns the entry registered under name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	entry, ok := s.index.Get(name)
	if !ok {
		return nil, aster.ErrUnknownOperation
	}
	return entry, nil
}

// MatchTools returns all entries whose name satisfies pattern ('*' matches
// everything, otherwise prefix semantics).
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	var result serverproto.Tools
	for _, entry := range s.entries {
		if matcher.Match(pattern, entry.Metadata.Name) {
			result = append(result, entry)
		}
	}
	return result
}

// ToolNames returns all registered tool names in catalog order. The slice is
// a copy and therefore safe for callers to modify.
func (s *Service) ToolNames() []string {
	names := make([]string, len(s.entries))
	for i, entry := range s.entries {
		names[i] = entry.Metadata.Name
	}
	return names
}

// ToolDescriptors returns basic metadata for every tool (name & description).
// The returned slice is detached from internal state and therefore read-only
// for callers.
func (s *Service) ToolDescriptors() []struct{ Name, Description string } {
	result := make([]struct{ Name, Description string }, len(s.entries))
	for i, entry := range s.entries {
		result[i] = struct{ Name, Description string }{
			Name:        entry.Metadata.Name,
			Description: conv.Dereference[string](entry.Metadata.Description),
		}
	}
	return result
}

// ToolMetadata returns description and input schema for a named tool when
// present. The last return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	entry, ok := s.index.Get(name)
	if !ok {
		return "", nil, false
	}
	return conv.Dereference[string](entry.Metadata.Description), entry.Metadata.InputSchema, true
}

// CallTool dispatches one invocation through the same handler the MCP
// transport uses. Unknown names yield a MethodNotFound error.
func (s *Service) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	entry, ok := s.index.Get(name)
	if !ok {
		return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "unknown tool: "+name, nil)
	}
	request := &mcpschema.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = mcpschema.CallToolRequestParamsArguments(args)
	return entry.Handler(ctx, request)
}

// Option modifies a service instance before it is initialised. Users can
// pass an arbitrary number of options to New.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a default
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithHTTPClient overrides the HTTP client used for upstream calls.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.httpClient = client
	}
}

// WithClock overrides the timestamp source used when signing requests.
func WithClock(clock aster.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// New constructs a new service instance. The actual bootstrap is handled by
// init() in bootstrap.go so that callers do not need to care about the
// internal initialisation sequence.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewWithConfig constructs a service for the supplied configuration.
// Additional options may follow the configuration instance.
func NewWithConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	return New(ctx, append([]Option{WithConfig(cfg)}, opts...)...)
}
