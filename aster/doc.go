// Package aster implements a thin client for the Aster DEX futures REST API
// together with the static catalog of operations the server exposes as tools.
// Each operation is described declaratively (method, path, ordered parameter
// schema, signing flag); a single generic dispatcher turns a definition plus
// an argument map into an authenticated HTTP call.  Privileged operations are
// signed with HMAC-SHA256 over the canonical query string, following the
// exchange's Binance-compatible authentication scheme.
package aster
