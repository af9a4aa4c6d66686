// Package flash provides one-time web notices persisted across redirects.
//
// Notices live server-side in the session store, keyed by the signed session
// cookie; the cookie carries only the session ID. A notice set by a mutating
// handler is consumed by exactly one later page render in the same client
// session, or dropped when the session's idle TTL lapses.
package flash

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/louisbranch/contactbook/internal/web/platform/session"
	"github.com/louisbranch/contactbook/internal/web/platform/sessioncookie"
)

// noticeKey is the session key under which the pending notice is stored.
const noticeKey = "flash.notice"

// Kind classifies flash notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice stores one flash message reference.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// NoticeSuccess creates a success notice for the provided localization key.
func NoticeSuccess(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// Flasher writes and drains one-time notices for the client session.
type Flasher struct {
	Sessions *session.Manager
	Cookies  sessioncookie.Codec
}

// Write stores a flash notice for the next page render, establishing the
// client session (and its cookie) on first use.
func (f Flasher) Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if w == nil || f.Sessions == nil {
		return
	}
	normalized, ok := normalizeNotice(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	sessionID, ok := f.Cookies.Read(r)
	if !ok {
		sessionID = session.NewID()
		f.Cookies.Write(w, r, sessionID)
	}
	f.Sessions.Set(sessionID, noticeKey, string(payload))
}

// ReadAndClear drains the pending flash notice, if any. A second call in a
// later request reports absent. A cookie that fails signature verification
// is expired so the client stops resending it.
func (f Flasher) ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil || f.Sessions == nil {
		return Notice{}, false
	}
	sessionID, ok := f.Cookies.Read(r)
	if !ok {
		if _, err := r.Cookie(sessioncookie.Name); err == nil {
			f.Cookies.Clear(w, r)
		}
		return Notice{}, false
	}
	payload, ok := f.Sessions.Consume(sessionID, noticeKey)
	if !ok {
		return Notice{}, false
	}
	return decodeNotice(payload)
}

func decodeNotice(raw string) (Notice, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal([]byte(value), &notice); err != nil {
		return Notice{}, false
	}
	return normalizeNotice(notice)
}

func normalizeNotice(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
