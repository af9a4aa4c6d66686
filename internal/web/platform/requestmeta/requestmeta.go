// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"strings"
)

// SchemePolicy controls how request metadata resolves request scheme.
//
// TrustForwardedProto must be explicitly enabled for X-Forwarded-Proto to be
// considered. Keeping this explicit avoids trusting headers from untrusted clients.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request) bool {
	return IsHTTPSWithPolicy(r, SchemePolicy{})
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS using
// the provided scheme policy.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	if policy.TrustForwardedProto {
		proto := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")))
		if idx := strings.IndexByte(proto, ','); idx >= 0 {
			proto = strings.TrimSpace(proto[:idx])
		}
		return proto == "https"
	}
	return false
}
