// Package mcp wires the Aster exchange operation catalog to the MCP protocol
// implementation.  Its central Service type loads configuration, builds the
// shared exchange client, materializes one tool entry per catalog definition
// and exposes them over an MCP server together with a small ops HTTP surface.
package mcp
