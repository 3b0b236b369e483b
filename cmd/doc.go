// Package cmd implements all sub-commands that make up the aster-mcp
// command-line interface.  Each file in this directory registers a single
// sub-command (serve, call, list-tools, tool).  The plumbing that is shared
// between commands such as configuration loading or service initialisation is
// located in shared.go.
package cmd
