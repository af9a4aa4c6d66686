package public

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/contactbook/internal/web/platform/flash"
	"github.com/louisbranch/contactbook/internal/web/platform/pagerender"
	"github.com/louisbranch/contactbook/internal/web/platform/session"
	"github.com/louisbranch/contactbook/internal/web/platform/sessioncookie"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	Register(mux, pagerender.Renderer{
		AppName: "Contact Book",
		Flash: flash.Flasher{
			Sessions: session.NewManager(time.Minute),
			Cookies:  sessioncookie.Codec{Secret: []byte("test-secret")},
		},
	})
	return mux
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{})
}

func TestPublicPathContracts(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "home", method: http.MethodGet, path: "/", wantStatus: http.StatusOK},
		{name: "about", method: http.MethodGet, path: "/about", wantStatus: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, path: "/missing", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}

func TestHomePageLocalizesTitle(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/?lang=id-ID", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Halaman Home") {
		t.Fatalf("missing localized title in %q", rr.Body.String())
	}
}

func TestUnknownPathRendersErrorPage(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "<html") {
		t.Fatalf("expected an HTML error page, got %q", rr.Body.String())
	}
}
