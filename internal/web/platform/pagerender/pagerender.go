// Package pagerender builds request-scoped page context (language, flash
// notice) and writes rendered templ pages.
package pagerender

import (
	"bytes"
	"log"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/contactbook/internal/web/i18n"
	apperrors "github.com/louisbranch/contactbook/internal/web/platform/errors"
	"github.com/louisbranch/contactbook/internal/web/platform/flash"
	"github.com/louisbranch/contactbook/internal/web/platform/httpx"
	webtemplates "github.com/louisbranch/contactbook/internal/web/templates"
)

// Renderer carries the shared rendering dependencies for page handlers.
type Renderer struct {
	AppName string
	Flash   flash.Flasher
}

// PageContext resolves the request language, persisting an explicit ?lang
// selection as a cookie.
func (re Renderer) PageContext(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return webtemplates.PageContext{
		Lang:        tag.String(),
		Loc:         i18n.Printer(tag),
		CurrentPath: r.URL.Path,
		AppName:     re.AppName,
	}
}

// PageContextWithNotice additionally drains the pending flash notice, if
// any. Only pages that display notices should use this variant; draining
// elsewhere would consume the message before it is seen.
func (re Renderer) PageContextWithNotice(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	pc := re.PageContext(w, r)
	if notice, ok := re.Flash.ReadAndClear(w, r); ok {
		pc.Notice = &notice
	}
	return pc
}

// Render writes the component as a full HTML page with the given status.
// The component is rendered to a buffer first so a late render failure
// cannot corrupt a partially written response.
func (re Renderer) Render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(r.Context(), &buf); err != nil {
		log.Printf("render page %s: %v", r.URL.Path, err)
		httpx.WriteError(w, apperrors.E(apperrors.KindUnknown, "internal error"))
		return
	}
	if err := httpx.WriteHTML(w, status, buf.String()); err != nil {
		log.Printf("write page %s: %v", r.URL.Path, err)
	}
}

// RenderError writes the shared error page for err, with the status from the
// typed error mapping and the error's localization key driving the message.
func (re Renderer) RenderError(w http.ResponseWriter, r *http.Request, err error) {
	pc := re.PageContext(w, r)
	status := apperrors.HTTPStatus(err)
	re.Render(w, r, status, webtemplates.ErrorPage(pc, status, apperrors.LocalizationKey(err)))
}
