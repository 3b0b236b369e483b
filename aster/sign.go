package aster

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// EncodeParameters serializes parameters into the canonical query string:
// URL-encoded key=value pairs joined by '&' in slice order. The same string
// is used as the signature payload, the request query and the POST body, so
// encoding must stay byte-identical across those uses.
func EncodeParameters(parameters []Parameter) string {
	var builder strings.Builder
	for i, parameter := range parameters {
		if i > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(url.QueryEscape(parameter.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(parameter.Value))
	}
	return builder.String()
}

// Sign computes the lowercase hex HMAC-SHA256 digest of payload keyed with secret.
func Sign(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
