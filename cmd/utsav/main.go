package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/terraincognita07/utsav/internal/calendar"
	"github.com/terraincognita07/utsav/internal/cli"
	"github.com/terraincognita07/utsav/internal/config"
	"github.com/terraincognita07/utsav/internal/services"
	ucli "github.com/urfave/cli/v3"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(logger).Run(ctx, os.Args); err != nil {
		logger.Error("utsav exited", "error", err)
		os.Exit(1)
	}
}

func newRootCommand(logger *slog.Logger) *ucli.Command {
	return &ucli.Command{
		Name:  "utsav",
		Usage: "festival calendar with per-day notes",
		Flags: configFlags(),
		Action: func(ctx context.Context, cmd *ucli.Command) error {
			return serveAction(ctx, cmd, logger)
		},
		Commands: []*ucli.Command{
			{
				Name:  "serve",
				Usage: "start the web calendar",
				Action: func(ctx context.Context, cmd *ucli.Command) error {
					return serveAction(ctx, cmd, logger)
				},
			},
			{
				Name:  "grid",
				Usage: "print a month grid",
				Flags: []ucli.Flag{monthFlag()},
				Action: func(ctx context.Context, cmd *ucli.Command) error {
					return gridAction(ctx, cmd, logger)
				},
			},
			{
				Name:  "festivals",
				Usage: "list the festivals of a month",
				Flags: []ucli.Flag{monthFlag()},
				Action: func(ctx context.Context, cmd *ucli.Command) error {
					return festivalsAction(cmd, logger)
				},
			},
			{
				Name:  "hash-passcode",
				Usage: "print a bcrypt hash for passcode_hash",
				Flags: []ucli.Flag{
					&ucli.BoolFlag{Name: "generate", Usage: "generate a random passcode instead of prompting"},
				},
				Action: func(ctx context.Context, cmd *ucli.Command) error {
					return cli.RunHashPasscodeCommand(os.Stdin, cmd.Root().Writer, cmd.Bool("generate"))
				},
			},
		},
	}
}

func configFlags() []ucli.Flag {
	return []ucli.Flag{
		&ucli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a TOML config file", Sources: ucli.EnvVars("UTSAV_CONFIG")},
		&ucli.StringFlag{Name: "port", Usage: "HTTP port", Sources: ucli.EnvVars("PORT")},
		&ucli.StringFlag{Name: "timezone", Usage: "timezone used for today", Sources: ucli.EnvVars("TZ")},
		&ucli.StringFlag{Name: "default-language", Usage: "fallback UI language", Sources: ucli.EnvVars("DEFAULT_LANGUAGE")},
		&ucli.StringFlag{Name: "week-start", Usage: "sunday or monday", Sources: ucli.EnvVars("WEEK_START")},
		&ucli.StringFlag{Name: "store", Usage: "memory or sqlite", Sources: ucli.EnvVars("UTSAV_STORE")},
		&ucli.StringFlag{Name: "db-path", Usage: "SQLite file for the sqlite store", Sources: ucli.EnvVars("DB_PATH")},
		&ucli.StringFlag{Name: "festivals-file", Usage: "TOML festival table replacing the built-in one", Sources: ucli.EnvVars("FESTIVALS_FILE")},
		&ucli.StringFlag{Name: "passcode-hash", Usage: "bcrypt hash that locks note writes", Sources: ucli.EnvVars("PASSCODE_HASH")},
		&ucli.StringFlag{Name: "secret-key", Usage: "key signing unlock cookies", Sources: ucli.EnvVars("SECRET_KEY")},
		&ucli.BoolFlag{Name: "cookie-secure", Usage: "mark cookies Secure", Sources: ucli.EnvVars("COOKIE_SECURE")},
	}
}

func monthFlag() ucli.Flag {
	return &ucli.StringFlag{Name: "month", Aliases: []string{"m"}, Usage: "month as YYYY-MM (default: current month)"}
}

// loadConfig reads the config file and applies any flag or environment override.
func loadConfig(cmd *ucli.Command) (config.Config, error) {
	cfg, err := config.Load(config.ExpandHome(cmd.String("config")))
	if err != nil {
		return config.Config{}, err
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"port", &cfg.Port},
		{"timezone", &cfg.Timezone},
		{"default-language", &cfg.DefaultLanguage},
		{"week-start", &cfg.WeekStart},
		{"store", &cfg.Store},
		{"db-path", &cfg.DBPath},
		{"festivals-file", &cfg.FestivalsFile},
		{"passcode-hash", &cfg.PasscodeHash},
		{"secret-key", &cfg.SecretKey},
	}
	for _, override := range overrides {
		if cmd.IsSet(override.flag) {
			*override.target = cmd.String(override.flag)
		}
	}
	if cmd.IsSet("cookie-secure") {
		cfg.CookieSecure = cmd.Bool("cookie-secure")
	}

	cfg.DBPath = config.ExpandHome(cfg.DBPath)
	cfg.FestivalsFile = config.ExpandHome(cfg.FestivalsFile)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func serveAction(ctx context.Context, cmd *ucli.Command, logger *slog.Logger) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return runServer(ctx, cfg, logger)
}

func gridAction(ctx context.Context, cmd *ucli.Command, logger *slog.Logger) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	festivals, err := cfg.Festivals()
	if err != nil {
		return err
	}
	store, closeStore, err := openNoteStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	today := calendar.DateOf(time.Now().In(cfg.Location(logger)))
	reference, err := resolveMonthFlag(cmd.String("month"), today)
	if err != nil {
		return err
	}

	service := services.NewCalendarService(festivals, store, cfg.WeekStartDay())
	return cli.RunGridCommand(ctx, service, reference, today, cmd.Root().Writer)
}

func festivalsAction(cmd *ucli.Command, logger *slog.Logger) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	festivals, err := cfg.Festivals()
	if err != nil {
		return err
	}

	today := calendar.DateOf(time.Now().In(cfg.Location(logger)))
	reference, err := resolveMonthFlag(cmd.String("month"), today)
	if err != nil {
		return err
	}
	cli.RunFestivalsCommand(festivals, reference, cmd.Root().Writer)
	return nil
}

func resolveMonthFlag(raw string, today calendar.Date) (calendar.Date, error) {
	if raw == "" {
		return today.StartOfMonth(), nil
	}
	return calendar.ParseMonth(raw)
}
