package api

import (
	"errors"
	"html/template"
	"log/slog"
	"time"

	"github.com/terraincognita07/utsav/internal/calendar"
	"github.com/terraincognita07/utsav/internal/i18n"
	"github.com/terraincognita07/utsav/internal/services"
	"github.com/terraincognita07/utsav/internal/templates"
)

type Handler struct {
	calendar     *services.CalendarService
	secretKey    []byte
	passcodeHash string
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	templates    map[string]*template.Template
	partials     map[string]*template.Template
	logger       *slog.Logger
	now          func() time.Time
}

func NewHandler(calendarService *services.CalendarService, secret string, passcodeHash string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if calendarService == nil {
		return nil, errors.New("calendar service is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if passcodeHash != "" && len(secret) == 0 {
		return nil, errors.New("secret key is required when a passcode is set")
	}
	if location == nil {
		location = time.Local
	}

	funcMap := newTemplateFuncMap()
	pages, err := parsePageTemplates(templates.FS, funcMap, pageTemplates)
	if err != nil {
		return nil, err
	}
	partials, err := parsePartialTemplates(templates.FS, funcMap, partialTemplateFiles)
	if err != nil {
		return nil, err
	}

	return &Handler{
		calendar:     calendarService,
		secretKey:    []byte(secret),
		passcodeHash: passcodeHash,
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		templates:    pages,
		partials:     partials,
		logger:       slog.Default(),
		now:          time.Now,
	}, nil
}

// today is the current calendar date in the configured timezone.
func (handler *Handler) today() calendar.Date {
	return calendar.DateOf(handler.now().In(handler.location))
}

func (handler *Handler) passcodeEnabled() bool {
	return handler.passcodeHash != ""
}
