package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/utsav/internal/security"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "utsav.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.WeekStartDay() != time.Sunday {
		t.Fatalf("expected sunday week start, got %s", cfg.WeekStartDay())
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
port = "9090"
week_start = "monday"
store = "sqlite"
db_path = "/tmp/utsav.db"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Store != StoreSQLite || cfg.WeekStartDay() != time.Monday {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.DefaultLanguage != "en" || cfg.Timezone != "UTC" {
		t.Fatalf("expected untouched defaults, got %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "prot = \"9090\"\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*Config){
		"empty port":       func(cfg *Config) { cfg.Port = "" },
		"bad week start":   func(cfg *Config) { cfg.WeekStart = "friday" },
		"unknown store":    func(cfg *Config) { cfg.Store = "redis" },
		"sqlite no path":   func(cfg *Config) { cfg.Store = StoreSQLite; cfg.DBPath = " " },
		"plain passcode":   func(cfg *Config) { cfg.PasscodeHash = "hunter22" },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}

	hash, err := security.HashPasscode("festival-lights")
	if err != nil {
		t.Fatalf("hash passcode: %v", err)
	}
	cfg := Default()
	cfg.PasscodeHash = hash
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected bcrypt hash to validate: %v", err)
	}
}

func TestResolveSecretKey(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.SecretKey = "change_me_in_production"
	if _, err := cfg.ResolveSecretKey(discardLogger()); err == nil {
		t.Fatal("expected error for insecure placeholder")
	}

	cfg.SecretKey = "too-short-secret"
	if _, err := cfg.ResolveSecretKey(discardLogger()); err == nil {
		t.Fatal("expected error for short secret")
	}

	valid := "0123456789abcdef0123456789abcdef"
	cfg.SecretKey = valid
	if secret, err := cfg.ResolveSecretKey(discardLogger()); err != nil || secret != valid {
		t.Fatalf("expected %q, got %q (%v)", valid, secret, err)
	}

	cfg.SecretKey = ""
	generated, err := cfg.ResolveSecretKey(discardLogger())
	if err != nil || len(generated) != 48 {
		t.Fatalf("expected generated 48 char secret, got %d (%v)", len(generated), err)
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Timezone = "Mars/Olympus_Mons"
	if location := cfg.Location(discardLogger()); location != time.UTC {
		t.Fatalf("expected UTC fallback, got %s", location)
	}
}

func TestFestivalsFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "festivals.toml")
	if err := os.WriteFile(path, []byte("[[festival]]\ndate = \"2026-11-08\"\nname = \"Diwali\"\n"), 0o600); err != nil {
		t.Fatalf("write festivals: %v", err)
	}

	cfg := Default()
	cfg.FestivalsFile = path
	table, err := cfg.Festivals()
	if err != nil {
		t.Fatalf("load festivals: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 festival, got %d", table.Len())
	}

	cfg.FestivalsFile = ""
	builtin, err := cfg.Festivals()
	if err != nil || builtin.Len() != 29 {
		t.Fatalf("expected built-in table, got %d (%v)", builtin.Len(), err)
	}
}
