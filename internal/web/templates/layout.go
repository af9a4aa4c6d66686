package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/contactbook/internal/web/i18n"
	"github.com/louisbranch/contactbook/internal/web/platform/flash"
	"github.com/louisbranch/contactbook/internal/web/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
	AppName     string
	// Notice is the drained flash message for this render, if any.
	Notice *flash.Notice
}

// ComposePageTitle joins the page title with the app name suffix.
func ComposePageTitle(title string, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	switch {
	case title == "":
		return appName
	case appName == "":
		return title
	default:
		return title + " | " + appName
	}
}

// htmlWriter accumulates the first write error so components read linearly.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err == nil {
		_, hw.err = io.WriteString(hw.w, s)
	}
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// pageLayout wraps body in the shared document chrome: head, nav, flash
// notice, and footer language switcher.
func pageLayout(pc PageContext, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!doctype html>` + "\n" + `<html lang="`)
		hw.text(langOrDefault(pc.Lang))
		hw.raw(`">` + "\n<head>\n" + `<meta charset="utf-8">` + "\n" +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n<title>")
		hw.text(ComposePageTitle(title, pc.AppName))
		hw.raw("</title>\n</head>\n<body>\n")
		writeNav(hw, pc)
		writeNotice(hw, pc)
		hw.raw("<main>\n")
		if hw.err != nil {
			return hw.err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		hw.raw("</main>\n")
		writeLanguageSwitcher(hw, pc)
		hw.raw("</body>\n</html>\n")
		return hw.err
	})
}

func langOrDefault(lang string) string {
	if strings.TrimSpace(lang) == "" {
		return i18n.Default().String()
	}
	return lang
}

func writeNav(hw *htmlWriter, pc PageContext) {
	hw.raw("<header>\n<nav>\n<ul>\n")
	writeNavLink(hw, pc, routepath.Home, T(pc.Loc, "nav.home"))
	writeNavLink(hw, pc, routepath.About, T(pc.Loc, "nav.about"))
	writeNavLink(hw, pc, routepath.Contacts, T(pc.Loc, "nav.contacts"))
	hw.raw("</ul>\n</nav>\n</header>\n")
}

func writeNavLink(hw *htmlWriter, pc PageContext, href string, label string) {
	hw.raw(`<li><a href="`)
	hw.text(href)
	hw.raw(`"`)
	if pc.CurrentPath == href {
		hw.raw(` aria-current="page"`)
	}
	hw.raw(`>`)
	hw.text(label)
	hw.raw("</a></li>\n")
}

func writeNotice(hw *htmlWriter, pc PageContext) {
	if pc.Notice == nil {
		return
	}
	hw.raw(`<p class="flash flash-`)
	hw.text(string(pc.Notice.Kind))
	hw.raw(`" role="status">`)
	hw.text(T(pc.Loc, pc.Notice.Key))
	hw.raw("</p>\n")
}

func writeLanguageSwitcher(hw *htmlWriter, pc PageContext) {
	hw.raw("<footer>\n<ul>\n")
	for _, tag := range i18n.Supported() {
		label := "nav.lang_en"
		if strings.HasPrefix(tag.String(), "id") {
			label = "nav.lang_id"
		}
		hw.raw(`<li><a href="?` + i18n.LangParam + `=`)
		hw.text(tag.String())
		hw.raw(`">`)
		hw.text(T(pc.Loc, label))
		hw.raw("</a></li>\n")
	}
	hw.raw("</ul>\n</footer>\n")
}
