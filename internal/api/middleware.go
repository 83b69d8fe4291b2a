package api

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	unlockCookieName   = "utsav_unlock"
	languageCookieName = "utsav_lang"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
	contextUnlockedKey = "notes_unlocked"
)

func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	cookieLanguage := c.Cookies(languageCookieName)
	language := handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	if cookieLanguage != "" {
		language = handler.i18n.NormalizeLanguage(cookieLanguage)
	}

	if cookieLanguage != language {
		handler.setLanguageCookie(c, language)
	}

	c.Locals(contextLanguageKey, language)
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
	return c.Next()
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    handler.i18n.NormalizeLanguage(language),
		Path:     "/",
		HTTPOnly: false,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().AddDate(1, 0, 0),
	})
}

// NotesWriteAllowed guards note writes when a passcode is configured.
func (handler *Handler) NotesWriteAllowed(c *fiber.Ctx) error {
	if handler.notesUnlocked(c) {
		return c.Next()
	}
	if strings.HasPrefix(c.Path(), "/api/") || acceptsJSON(c) {
		return apiError(c, fiber.StatusForbidden, "notes are locked")
	}

	next := "/calendar?month=" + url.QueryEscape(c.FormValue("month")) + "&day=" + url.QueryEscape(c.Params("date"))
	return redirectOrJSON(c, "/unlock?next="+url.QueryEscape(next))
}

// notesUnlocked reports whether the request may write notes. The result is
// cached on the request so templates and handlers agree.
func (handler *Handler) notesUnlocked(c *fiber.Ctx) bool {
	if cached, ok := c.Locals(contextUnlockedKey).(bool); ok {
		return cached
	}
	unlocked := !handler.passcodeEnabled() || handler.validUnlockCookie(c) == nil
	c.Locals(contextUnlockedKey, unlocked)
	return unlocked
}
