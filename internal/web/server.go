// Package web hosts the contact book HTTP server.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/contactbook/internal/storage"
	"github.com/louisbranch/contactbook/internal/web/modules/contacts"
	"github.com/louisbranch/contactbook/internal/web/modules/public"
	"github.com/louisbranch/contactbook/internal/web/platform/flash"
	"github.com/louisbranch/contactbook/internal/web/platform/httpx"
	"github.com/louisbranch/contactbook/internal/web/platform/pagerender"
	"github.com/louisbranch/contactbook/internal/web/platform/requestmeta"
	"github.com/louisbranch/contactbook/internal/web/platform/session"
	"github.com/louisbranch/contactbook/internal/web/platform/sessioncookie"
)

// defaultAppName brands page titles when no name is configured.
const defaultAppName = "Contact Book"

// sessionSweepInterval paces the background eviction of expired sessions.
const sessionSweepInterval = time.Minute

// Config defines the inputs for the web server.
type Config struct {
	Addr          string
	AppName       string
	SessionSecret []byte
	// FlashTTL bounds how long an unread flash notice survives. Zero selects
	// the session store default.
	FlashTTL     time.Duration
	SchemePolicy requestmeta.SchemePolicy
	Store        storage.ContactStore
}

// Server hosts the contact book HTTP server.
type Server struct {
	addr       string
	httpServer *http.Server
	sessions   *session.Manager
}

// NewHandler wires the module routes and shared middleware into one handler.
func NewHandler(config Config, sessions *session.Manager) http.Handler {
	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = defaultAppName
	}
	render := pagerender.Renderer{
		AppName: appName,
		Flash: flash.Flasher{
			Sessions: sessions,
			Cookies: sessioncookie.Codec{
				Secret: config.SessionSecret,
				Policy: config.SchemePolicy,
			},
		},
	}

	mux := http.NewServeMux()
	public.Register(mux, render)
	contacts.Register(mux, config.Store, render)

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		httpx.MethodOverride(),
	)
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	addr := strings.TrimSpace(config.Addr)
	if addr == "" {
		return nil, errors.New("http address is required")
	}
	if config.Store == nil {
		return nil, errors.New("contact store is required")
	}
	if len(config.SessionSecret) == 0 {
		return nil, errors.New("session secret is required")
	}

	sessions := session.NewManager(config.FlashTTL)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(config, sessions),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		addr:       addr,
		httpServer: httpServer,
		sessions:   sessions,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	go s.sessions.Sweep(ctx, sessionSweepInterval)

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
