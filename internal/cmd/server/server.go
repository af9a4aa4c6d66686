// Package server wires configuration, storage, and telemetry for the
// contact book binary.
package server

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/contactbook/internal/platform/config"
	"github.com/louisbranch/contactbook/internal/platform/otel"
	"github.com/louisbranch/contactbook/internal/storage"
	bboltstore "github.com/louisbranch/contactbook/internal/storage/bbolt"
	sqlitestore "github.com/louisbranch/contactbook/internal/storage/sqlite"
	"github.com/louisbranch/contactbook/internal/web"
	"github.com/louisbranch/contactbook/internal/web/platform/requestmeta"
)

const serviceName = "contactbook"

// Config holds the server command configuration. Environment variables seed
// the defaults; flags override them.
type Config struct {
	HTTPAddr          string        `env:"CONTACTBOOK_HTTP_ADDR" envDefault:"localhost:8080"`
	AppName           string        `env:"CONTACTBOOK_APP_NAME" envDefault:"Contact Book"`
	SessionSecret     string        `env:"CONTACTBOOK_SESSION_SECRET"`
	FlashTTL          time.Duration `env:"CONTACTBOOK_FLASH_TTL" envDefault:"6s"`
	StorageDriver     string        `env:"CONTACTBOOK_STORAGE_DRIVER" envDefault:"bbolt"`
	StoragePath       string        `env:"CONTACTBOOK_STORAGE_PATH" envDefault:"contactbook.db"`
	TrustProxyHeaders bool          `env:"CONTACTBOOK_TRUST_PROXY_HEADERS"`
}

// ParseConfig parses the environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "application display name")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "secret for signing session cookies")
	fs.DurationVar(&cfg.FlashTTL, "flash-ttl", cfg.FlashTTL, "lifetime of unread flash notices")
	fs.StringVar(&cfg.StorageDriver, "storage-driver", cfg.StorageDriver, "storage driver (bbolt or sqlite)")
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "storage file path")
	fs.BoolVar(&cfg.TrustProxyHeaders, "trust-proxy-headers", cfg.TrustProxyHeaders, "trust X-Forwarded-Proto from a fronting proxy")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.SessionSecret) == "" {
		return Config{}, fmt.Errorf("session secret is required (CONTACTBOOK_SESSION_SECRET or -session-secret)")
	}
	return cfg, nil
}

// Run starts the contact book server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StorageDriver, err)
	}
	defer store.Close()

	server, err := web.NewServer(web.Config{
		Addr:          cfg.HTTPAddr,
		AppName:       cfg.AppName,
		SessionSecret: []byte(cfg.SessionSecret),
		FlashTTL:      cfg.FlashTTL,
		SchemePolicy:  requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustProxyHeaders},
		Store:         store,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func openStore(cfg Config) (storage.ContactStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.StorageDriver)) {
	case "", "bbolt":
		return bboltstore.Open(cfg.StoragePath)
	case "sqlite":
		return sqlitestore.Open(cfg.StoragePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
