package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/contactbook/internal/web/routepath"
)

// HomePage renders the landing page.
func HomePage(pc PageContext) templ.Component {
	title := T(pc.Loc, "page.home.title")
	return pageLayout(pc, title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<h1>")
		hw.text(title)
		hw.raw("</h1>\n<p><a href=\"")
		hw.text(routepath.Contacts)
		hw.raw("\">")
		hw.text(T(pc.Loc, "nav.contacts"))
		hw.raw("</a></p>\n")
		return hw.err
	}))
}

// AboutPage renders the about page.
func AboutPage(pc PageContext) templ.Component {
	title := T(pc.Loc, "page.about.title")
	return pageLayout(pc, title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<h1>")
		hw.text(title)
		hw.raw("</h1>\n<p>")
		hw.text(pc.AppName)
		hw.raw("</p>\n")
		return hw.err
	}))
}
