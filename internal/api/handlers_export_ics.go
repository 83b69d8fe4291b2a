package api

import (
	"bytes"

	"github.com/emersion/go-ical"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportICS(c *fiber.Ctx) error {
	cal, err := handler.calendar.ExportCalendar(c.UserContext(), handler.now())
	if err != nil {
		handler.logger.Error("build calendar export failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to export calendar")
	}

	var output bytes.Buffer
	if err := ical.NewEncoder(&output).Encode(cal); err != nil {
		handler.logger.Error("encode calendar export failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to export calendar")
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="utsav.ics"`)
	return c.Send(output.Bytes())
}
