// Package config defines the YAML/JSON configuration model that can be passed
// to the MCP service on startup, helpers to load it from a file or URL, and
// the environment overrides (PORT, ASTER_API_KEY, ASTER_API_SECRET) applied
// on top.
package config
