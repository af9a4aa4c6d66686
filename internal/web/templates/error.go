package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/contactbook/internal/web/routepath"
)

// ErrorPage renders a not-found or server-error page for the status code.
// A non-empty messageKey overrides the generic message for the status.
func ErrorPage(pc PageContext, statusCode int, messageKey string) templ.Component {
	title := errorPageTitle(statusCode, pc.Loc)
	return pageLayout(pc, title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<h1>")
		hw.text(title)
		hw.raw("</h1>\n<p>")
		hw.text(errorPageMessage(statusCode, messageKey, pc.Loc))
		hw.raw(`</p>` + "\n" + `<p><a href="`)
		hw.text(routepath.Home)
		hw.raw(`">`)
		hw.text(T(pc.Loc, "nav.home"))
		hw.raw("</a></p>\n")
		return hw.err
	}))
}

func errorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "page.not_found.title")
	}
	return T(loc, "page.error.title")
}

func errorPageMessage(statusCode int, messageKey string, loc Localizer) string {
	if messageKey != "" {
		return T(loc, messageKey)
	}
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "error.not_found")
	}
	return T(loc, "error.internal")
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
