// Package conv provides small generic helpers for moving between values and
// pointers, mainly when populating or reading the optional fields of MCP
// schema structs.
package conv
