// Package session provides a server-held, cookie-identified session store.
//
// Sessions hold short-lived key/value pairs (flash messages). Values survive
// until consumed or until the session's idle TTL lapses; expired sessions
// are dropped lazily on access and by the optional background sweep.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// DefaultTTL matches the reference deployment's session idle lifetime. It is
// a UX parameter, not a correctness requirement.
const DefaultTTL = 6 * time.Second

type entry struct {
	values    map[string]string
	expiresAt time.Time
}

// Manager is a thread-safe in-memory session store with idle expiry.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

// NewManager creates an empty session store. A non-positive ttl falls back to
// DefaultTTL.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// NewID returns a fresh random session identifier.
func NewID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Set stores a value in the session, creating the session as needed and
// resetting its idle expiry. A second Set for the same key overwrites
// (last-write-wins).
func (m *Manager) Set(sessionID, key, value string) {
	if m == nil || sessionID == "" || key == "" {
		return
	}
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked(now)
	sess, ok := m.sessions[sessionID]
	if !ok {
		sess = &entry{values: make(map[string]string)}
		m.sessions[sessionID] = sess
	}
	sess.values[key] = value
	sess.expiresAt = now.Add(m.ttl)
}

// Consume returns the stored value and removes it, so a later Consume for the
// same key reports absent. Expired sessions read as absent.
func (m *Manager) Consume(sessionID, key string) (string, bool) {
	if m == nil || sessionID == "" || key == "" {
		return "", false
	}
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	if !ok {
		return "", false
	}
	if now.After(sess.expiresAt) {
		delete(m.sessions, sessionID)
		return "", false
	}
	value, ok := sess.values[key]
	if !ok {
		return "", false
	}
	delete(sess.values, key)
	if len(sess.values) == 0 {
		delete(m.sessions, sessionID)
	}
	return value, true
}

// Sweep drops expired sessions at the given interval until ctx ends. Run it
// in its own goroutine; unread messages are otherwise only dropped on access.
func (m *Manager) Sweep(ctx context.Context, interval time.Duration) {
	if m == nil || ctx == nil {
		return
	}
	if interval <= 0 {
		interval = m.ttl
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := m.now()
			m.mu.Lock()
			m.pruneLocked(now)
			m.mu.Unlock()
		}
	}
}

func (m *Manager) pruneLocked(now time.Time) {
	for id, sess := range m.sessions {
		if now.After(sess.expiresAt) {
			delete(m.sessions, id)
		}
	}
}
