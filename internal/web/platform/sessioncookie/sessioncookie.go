// Package sessioncookie centralizes web session cookie behavior.
//
// Session IDs travel in a signed cookie: the value is the ID plus an
// HMAC-SHA256 tag keyed by the configured secret. Tampered or unsigned
// values read as absent.
package sessioncookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/louisbranch/contactbook/internal/web/platform/requestmeta"
)

// Name is the canonical web session cookie name.
const Name = "contactbook_session"

// Codec reads and writes signed session cookies.
type Codec struct {
	Secret []byte
	Policy requestmeta.SchemePolicy
}

// Read returns the verified session ID when the cookie is present and its
// signature checks out.
func (c Codec) Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	id, tag, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", false
	}
	if !hmac.Equal([]byte(tag), []byte(c.sign(id))) {
		return "", false
	}
	return id, true
}

// Write sets the signed session cookie for the current request context.
func (c Codec) Write(w http.ResponseWriter, r *http.Request, sessionID string) {
	if w == nil {
		return
	}
	sessionID = strings.TrimSpace(sessionID)
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    sessionID + "." + c.sign(sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.Policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie for the current request context.
func (c Codec) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.Policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (c Codec) sign(sessionID string) string {
	mac := hmac.New(sha256.New, c.Secret)
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))
}
