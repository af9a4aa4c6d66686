package requestmeta_test

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/contactbook/internal/web/platform/requestmeta"
)

func TestIsHTTPSWithPolicy(t *testing.T) {
	t.Parallel()

	t.Run("plain request", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/", nil)
		if requestmeta.IsHTTPS(r) {
			t.Fatal("IsHTTPS() = true for plain request")
		}
	})

	t.Run("tls request", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/", nil)
		r.TLS = &tls.ConnectionState{}
		if !requestmeta.IsHTTPS(r) {
			t.Fatal("IsHTTPS() = false for TLS request")
		}
	})

	t.Run("forwarded proto untrusted by default", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-Proto", "https")
		if requestmeta.IsHTTPS(r) {
			t.Fatal("IsHTTPS() trusted X-Forwarded-Proto without policy")
		}
	})

	t.Run("forwarded proto trusted with policy", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-Proto", "HTTPS, http")
		policy := requestmeta.SchemePolicy{TrustForwardedProto: true}
		if !requestmeta.IsHTTPSWithPolicy(r, policy) {
			t.Fatal("IsHTTPSWithPolicy() = false with trusted header")
		}
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()
		if requestmeta.IsHTTPS(nil) {
			t.Fatal("IsHTTPS(nil) = true")
		}
	})
}
