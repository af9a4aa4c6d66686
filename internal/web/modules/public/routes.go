package public

import (
	"net/http"

	"github.com/louisbranch/contactbook/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Home+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleAbout)
	// Catch-all so unknown paths get the shared error page.
	mux.HandleFunc(http.MethodGet+" /", h.handleNotFound)
}
