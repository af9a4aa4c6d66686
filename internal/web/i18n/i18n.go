// Package i18n resolves the request language and builds message printers
// for the web surface. Message catalogs live in this package and register
// themselves with x/text at init.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "contactbook_lang"
)

var supported = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("id-ID"),
}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag parses a language value against the supported set.
func ParseTag(value string) (language.Tag, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return language.Tag{}, false
	}
	return matchTag([]language.Tag{tag})
}

// ResolveTag determines the best language tag for the request. The bool
// indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			if tag, ok := matchTag(tags); ok {
				return tag, false
			}
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func matchTag(tags []language.Tag) (language.Tag, bool) {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return supported[index], true
}
