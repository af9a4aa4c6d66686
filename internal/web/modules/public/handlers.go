// Package public serves the unauthenticated informational pages.
package public

import (
	"net/http"

	apperrors "github.com/louisbranch/contactbook/internal/web/platform/errors"
	"github.com/louisbranch/contactbook/internal/web/platform/pagerender"
	webtemplates "github.com/louisbranch/contactbook/internal/web/templates"
)

type handlers struct {
	render pagerender.Renderer
}

// Register wires the public page routes onto mux.
func Register(mux *http.ServeMux, render pagerender.Renderer) {
	registerRoutes(mux, handlers{render: render})
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	pc := h.render.PageContext(w, r)
	h.render.Render(w, r, http.StatusOK, webtemplates.HomePage(pc))
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	pc := h.render.PageContext(w, r)
	h.render.Render(w, r, http.StatusOK, webtemplates.AboutPage(pc))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.render.RenderError(w, r, apperrors.E(apperrors.KindNotFound, "page not found"))
}
