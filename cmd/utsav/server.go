package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/utsav/internal/api"
	"github.com/terraincognita07/utsav/internal/calendar"
	"github.com/terraincognita07/utsav/internal/config"
	"github.com/terraincognita07/utsav/internal/db"
	"github.com/terraincognita07/utsav/internal/i18n"
	"github.com/terraincognita07/utsav/internal/services"
)

const shutdownTimeout = 10 * time.Second

func runServer(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	store, closeStore, err := openNoteStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	app, err := newServerApp(cfg, store, log)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	}()

	log.Info("utsav listening",
		"addr", "http://0.0.0.0:"+cfg.Port,
		"store", cfg.Store,
		"tz", cfg.Timezone,
		"week_start", cfg.WeekStart,
		"locked", cfg.PasscodeHash != "",
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	log.Info("utsav stopped")
	return nil
}

func newServerApp(cfg config.Config, store calendar.NoteStore, log *slog.Logger) (*fiber.App, error) {
	location := cfg.Location(log)

	festivals, err := cfg.Festivals()
	if err != nil {
		return nil, err
	}
	secretKey, err := cfg.ResolveSecretKey(log)
	if err != nil {
		return nil, err
	}
	i18nManager, err := i18n.NewEmbeddedManager(cfg.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("i18n init failed: %w", err)
	}

	service := services.NewCalendarService(festivals, store, cfg.WeekStartDay())
	handler, err := api.NewHandler(service, secretKey, cfg.PasscodeHash, location, i18nManager, cfg.CookieSecure)
	if err != nil {
		return nil, fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Utsav",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cfg.CookieSecure)))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, nil
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "utsav_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}
}

// openNoteStore returns the configured note store and a func releasing it.
func openNoteStore(cfg config.Config) (calendar.NoteStore, func() error, error) {
	if cfg.Store != config.StoreSQLite {
		return calendar.NewMemoryNoteStore(), func() error { return nil }, nil
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	return db.NewNoteRepository(database), func() error { return db.Close(database) }, nil
}
