package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/terraincognita07/utsav/internal/calendar"
	"github.com/terraincognita07/utsav/internal/security"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"

	minSecretKeyLength = 32
)

var insecureSecretKeys = map[string]bool{
	"change_me_in_production":                    true,
	"replace_with_at_least_32_random_characters": true,
}

// Config is the server configuration. Zero fields are filled by Default.
type Config struct {
	Port            string `toml:"port"`
	Timezone        string `toml:"timezone"`
	DefaultLanguage string `toml:"default_language"`
	WeekStart       string `toml:"week_start"`
	Store           string `toml:"store"`
	DBPath          string `toml:"db_path"`
	FestivalsFile   string `toml:"festivals_file"`
	PasscodeHash    string `toml:"passcode_hash"`
	SecretKey       string `toml:"secret_key"`
	CookieSecure    bool   `toml:"cookie_secure"`
}

func Default() Config {
	return Config{
		Port:            "8080",
		Timezone:        "UTC",
		DefaultLanguage: "en",
		WeekStart:       "sunday",
		Store:           StoreMemory,
		DBPath:          filepath.Join("data", "utsav.db"),
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	metadata, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("read config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Port) == "" {
		return errors.New("port is required")
	}
	if _, err := calendar.ParseWeekStart(cfg.WeekStart); err != nil {
		return err
	}
	switch cfg.Store {
	case StoreMemory:
	case StoreSQLite:
		if strings.TrimSpace(cfg.DBPath) == "" {
			return errors.New("db_path is required for the sqlite store")
		}
	default:
		return fmt.Errorf("unsupported store %q", cfg.Store)
	}
	if cfg.PasscodeHash != "" && !security.ValidPasscodeHash(cfg.PasscodeHash) {
		return errors.New("passcode_hash is not a bcrypt hash")
	}
	return nil
}

func (cfg Config) WeekStartDay() time.Weekday {
	weekStart, _ := calendar.ParseWeekStart(cfg.WeekStart)
	return weekStart
}

// Location loads the configured timezone, falling back to UTC with a warning.
func (cfg Config) Location(logger *slog.Logger) *time.Location {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to UTC", "timezone", cfg.Timezone)
		return time.UTC
	}
	return location
}

// Festivals returns the table from festivals_file, or the built-in one.
func (cfg Config) Festivals() (*calendar.FestivalTable, error) {
	if strings.TrimSpace(cfg.FestivalsFile) == "" {
		return calendar.DefaultFestivals(), nil
	}
	return calendar.LoadFestivalFile(cfg.FestivalsFile)
}

// ResolveSecretKey validates secret_key. When it is unset a random key is
// generated, which invalidates unlock cookies on every restart.
func (cfg Config) ResolveSecretKey(logger *slog.Logger) (string, error) {
	secret := strings.TrimSpace(cfg.SecretKey)
	if secret == "" {
		generated, err := security.RandomString(48, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
		if err != nil {
			return "", fmt.Errorf("generate secret key: %w", err)
		}
		if cfg.PasscodeHash != "" {
			logger.Warn("secret_key not set; unlock cookies will not survive a restart")
		}
		return generated, nil
	}
	if insecureSecretKeys[secret] {
		return "", errors.New("secret_key uses an insecure placeholder")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("secret_key must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

// ExpandHome resolves a leading ~ in path.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
