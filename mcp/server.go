package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	mcpsrv "github.com/viant/mcp"

	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	serverproto "github.com/viant/mcp-protocol/server"
)

// NewHandler returns an MCP implementer that exposes the already-built
// shared tool entries. Every incoming connection therefore reuses the same
// registry content – tools are registered once during Service bootstrap
// rather than on each connection.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, tool := range s.entries {
		impl.Registry.ToolRegistry.Put(tool.Metadata.Name, tool)
	}
	return impl, nil
}

// NewServer builds the MCP protocol server around this service's handler
// factory, honoring server options from the configuration.
func (s *Service) NewServer(ctx context.Context) (*mcpsrv.Server, error) {
	return mcpsrv.NewServer(s.NewHandler, s.config.Server)
}

// HTTPServer assembles the HTTP transport on the given port, with the ops
// endpoints (/health, /v1/tools) routed beside the MCP endpoint.
func (s *Service) HTTPServer(ctx context.Context, port int) (*http.Server, error) {
	mcpServer, err := s.NewServer(ctx)
	if err != nil {
		return nil, err
	}
	httpServer := mcpServer.HTTP(ctx, fmt.Sprintf(":%d", port))
	httpServer.Handler = s.Router(httpServer.Handler)
	return httpServer, nil
}

// Router wraps the MCP transport handler with the ops routes. Unmatched
// paths fall through to the MCP endpoint so the transport keeps control of
// its own routing.
func (s *Service) Router(mcpHandler http.Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/health", s.handleHealth)
	router.Get("/v1/tools", s.handleListTools)
	router.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		mcpHandler.ServeHTTP(writer, request)
	})
	return router
}

func (s *Service) handleHealth(writer http.ResponseWriter, _ *http.Request) {
	writer.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		"status": "ok",
		"uptime": s.Uptime().String(),
	})
}

// handleListTools serves the read-only catalog listing for plain HTTP
// consumers that do not speak MCP.
func (s *Service) handleListTools(writer http.ResponseWriter, _ *http.Request) {
	tools := make([]interface{}, 0, len(s.entries))
	for _, entry := range s.entries {
		tools = append(tools, entry.Metadata)
	}
	writer.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{"tools": tools})
}
