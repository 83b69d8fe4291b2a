package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utsav/internal/calendar"
)

// resolveMonthQuery parses an optional YYYY-MM value, defaulting to today's month.
func (handler *Handler) resolveMonthQuery(raw string) (calendar.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return handler.today().StartOfMonth(), nil
	}
	return calendar.ParseMonth(raw)
}

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	reference, err := handler.resolveMonthQuery(c.Query("month"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	view, err := handler.calendar.MonthView(c.UserContext(), reference, handler.today())
	if err != nil {
		handler.logger.Error("build calendar payload failed", "month", reference.MonthKey(), "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load calendar")
	}
	return c.JSON(newCalendarPayload(view, strings.ToLower(handler.calendar.WeekStart().String())))
}

func (handler *Handler) GetFestivals(c *fiber.Ctx) error {
	reference, err := handler.resolveMonthQuery(c.Query("month"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}
	return c.JSON(fiber.Map{
		"month":     reference.MonthKey(),
		"festivals": newFestivalPayloads(handler.calendar.Festivals().InMonth(reference)),
	})
}

func (handler *Handler) GetNote(c *fiber.Ctx) error {
	date, err := calendar.ParseISO(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	detail, err := handler.calendar.DayDetail(c.UserContext(), date)
	if err != nil {
		handler.logger.Error("load note failed", "date", date.ISO(), "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load note")
	}
	return c.JSON(newNotePayload(detail))
}

func (handler *Handler) PutNote(c *fiber.Ctx) error {
	date, err := calendar.ParseISO(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := noteInput{}
	if err := c.BodyParser(&input); err != nil || input.Note == nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	ctx := c.UserContext()
	if _, err := handler.calendar.SaveNote(ctx, calendar.NewState(date), date, *input.Note); err != nil {
		handler.logger.Error("save note failed", "date", date.ISO(), "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to save note")
	}

	detail, err := handler.calendar.DayDetail(ctx, date)
	if err != nil {
		handler.logger.Error("load note failed", "date", date.ISO(), "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load note")
	}
	return c.JSON(newNotePayload(detail))
}
