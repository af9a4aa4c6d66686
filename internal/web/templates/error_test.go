package templates

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestErrorPageNotFound(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := ErrorPage(PageContext{Lang: "en-US"}, http.StatusNotFound, "").Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	got := b.String()

	if !strings.Contains(got, "page.not_found.title") {
		t.Fatalf("missing not-found title in %q", got)
	}
	if !strings.Contains(got, "error.not_found") {
		t.Fatalf("missing not-found message in %q", got)
	}
}

func TestErrorPageCoercesUnknownStatusToServerError(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := ErrorPage(PageContext{Lang: "en-US"}, http.StatusTeapot, "").Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	got := b.String()

	if !strings.Contains(got, "page.error.title") {
		t.Fatalf("missing error title in %q", got)
	}
	if !strings.Contains(got, "error.internal") {
		t.Fatalf("missing error message in %q", got)
	}
}

func TestErrorPageMessageKeyOverridesDefault(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := ErrorPage(PageContext{Lang: "en-US"}, http.StatusInternalServerError, "contact.error.invalid_submission").Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	got := b.String()

	if !strings.Contains(got, "contact.error.invalid_submission") {
		t.Fatalf("missing keyed message in %q", got)
	}
	if strings.Contains(got, "error.internal") {
		t.Fatalf("default message not overridden in %q", got)
	}
}
