// Package syncmap offers a lightweight, generic, concurrency-safe map with
// basic Get/Set/Delete/List operations guarded by a sync.RWMutex.  It backs
// the registry-style lookups of the MCP service layer.
package syncmap
