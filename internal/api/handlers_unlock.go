package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utsav/internal/security"
)

func (handler *Handler) ShowUnlock(c *fiber.Ctx) error {
	next := sanitizeRedirectPath(c.Query("next"), "/calendar")
	if handler.notesUnlocked(c) {
		return c.Redirect(next, fiber.StatusSeeOther)
	}
	return handler.render(c, "unlock", fiber.Map{
		"Title": localizedPageTitle(currentMessages(c), "meta.title.unlock", "Utsav | Unlock"),
		"Next":  next,
	})
}

func (handler *Handler) Unlock(c *fiber.Ctx) error {
	next := sanitizeRedirectPath(c.FormValue("next"), "/calendar")
	if !handler.passcodeEnabled() {
		return redirectOrJSON(c, next)
	}

	if err := security.CheckPasscode(handler.passcodeHash, c.FormValue("passcode")); err != nil {
		handler.logger.Warn("unlock attempt rejected", "ip", c.IP())
		if isHTMX(c) || acceptsJSON(c) {
			return apiError(c, fiber.StatusUnauthorized, "invalid passcode")
		}
		c.Status(fiber.StatusUnauthorized)
		return handler.render(c, "unlock", fiber.Map{
			"Title":    localizedPageTitle(currentMessages(c), "meta.title.unlock", "Utsav | Unlock"),
			"Next":     next,
			"ErrorKey": "unlock.error.invalid",
		})
	}

	if err := handler.setUnlockCookie(c); err != nil {
		handler.logger.Error("issue unlock cookie failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to unlock")
	}
	return redirectOrJSON(c, next)
}

func (handler *Handler) Lock(c *fiber.Ctx) error {
	handler.clearUnlockCookie(c)
	return redirectOrJSON(c, "/calendar")
}
