package cmd

import (
	"context"
	"sync"

	"github.com/questflowai/aster-mcp-server/mcp"
	mcpconfig "github.com/questflowai/aster-mcp-server/mcp/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises an mcp.Service only once and reuses the instance
// across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		var cfg *mcpconfig.Config
		if cfgPath != "" {
			var err error
			cfg, err = mcpconfig.Load(ctx, cfgPath)
			if err != nil {
				svcErr = err
				return
			}
		}

		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg))
	})
	return svcInst, svcErr
}
