package server

import (
	"flag"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("CONTACTBOOK_SESSION_SECRET", "env-secret")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}

	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.StorageDriver != "bbolt" {
		t.Fatalf("StorageDriver = %q", cfg.StorageDriver)
	}
	if cfg.FlashTTL != 6*time.Second {
		t.Fatalf("FlashTTL = %v", cfg.FlashTTL)
	}
	if cfg.SessionSecret != "env-secret" {
		t.Fatalf("SessionSecret = %q", cfg.SessionSecret)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CONTACTBOOK_HTTP_ADDR", "localhost:9999")
	t.Setenv("CONTACTBOOK_SESSION_SECRET", "env-secret")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "localhost:7777",
		"-session-secret", "flag-secret",
		"-storage-driver", "sqlite",
	})
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}

	if cfg.HTTPAddr != "localhost:7777" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.SessionSecret != "flag-secret" {
		t.Fatalf("SessionSecret = %q", cfg.SessionSecret)
	}
	if cfg.StorageDriver != "sqlite" {
		t.Fatalf("StorageDriver = %q", cfg.StorageDriver)
	}
}

func TestParseConfigRequiresSessionSecret(t *testing.T) {
	t.Setenv("CONTACTBOOK_SESSION_SECRET", "")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("ParseConfig() = nil, want missing-secret error")
	}
}

func TestOpenStoreByDriver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name   string
		driver string
	}{
		{name: "bbolt", driver: "bbolt"},
		{name: "bbolt default", driver: ""},
		{name: "sqlite", driver: "sqlite"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, err := openStore(Config{
				StorageDriver: tc.driver,
				StoragePath:   filepath.Join(dir, tc.name+".db"),
			})
			if err != nil {
				t.Fatalf("openStore() = %v", err)
			}
			if err := store.Close(); err != nil {
				t.Fatalf("Close() = %v", err)
			}
		})
	}
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	if _, err := openStore(Config{StorageDriver: "mongo"}); err == nil {
		t.Fatal("openStore() = nil, want unknown-driver error")
	}
}
