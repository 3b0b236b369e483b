package mcp

import (
	"context"
	"net/http"
	"time"

	"github.com/questflowai/aster-mcp-server/aster"
	"github.com/questflowai/aster-mcp-server/internal/logger"
	"github.com/questflowai/aster-mcp-server/internal/syncmap"
	"github.com/questflowai/aster-mcp-server/mcp/config"

	serverproto "github.com/viant/mcp-protocol/server"
)

// init is the main bootstrap routine invoked by New once all options have
// been applied. It orchestrates the individual preparation steps so that the
// logic stays easy to read and to maintain.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}

	s.initLogger()
	s.initClient()
	s.buildToolEntries()
	return nil
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = config.New()
	} else {
		s.config.Init()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	s.started = time.Now()
}

func (s *Service) initLogger() {
	cfg := logger.DefaultConfig()
	if s.config.Log != nil {
		cfg.Level = logger.ParseLevel(s.config.Log.Level)
		if s.config.Log.Format != "" {
			cfg.Format = s.config.Log.Format
		}
	}
	logger.Init(cfg)
}

// initClient assembles the shared upstream client honoring the configured
// base URL and timeout.
func (s *Service) initClient() {
	httpClient := s.httpClient
	if httpClient == nil {
		if timeout := s.config.Exchange.Timeout(); timeout > 0 {
			httpClient = &http.Client{Timeout: timeout}
		} else {
			httpClient = http.DefaultClient
		}
	}
	s.client = aster.NewClient(s.config.Exchange.BaseURL,
		aster.WithHTTPClient(httpClient),
		aster.WithClock(s.clock))
}

// buildToolEntries materializes one MCP tool entry per catalog definition.
// The catalog is fixed, so this runs exactly once per service instance.
func (s *Service) buildToolEntries() {
	s.index = syncmap.New[*serverproto.ToolEntry]()
	s.entries = make([]*serverproto.ToolEntry, 0, len(aster.Catalog()))
	for _, def := range aster.Catalog() {
		entry := s.newToolEntry(def)
		s.entries = append(s.entries, entry)
		s.index.Set(def.Name, entry)
	}
}
