package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utsav/internal/calendar"
)

func (handler *Handler) ShowCalendar(c *fiber.Ctx) error {
	today := handler.today()
	reference, selected, err := resolveCalendarQuery(c.Query("month"), c.Query("day"), today)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid month")
	}

	ctx := c.UserContext()
	state := calendar.NewState(reference)
	if !selected.IsZero() {
		state, err = handler.calendar.Open(ctx, state, selected)
		if err != nil {
			handler.logger.Error("open day editor failed", "date", selected.ISO(), "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString("failed to load calendar")
		}
	}

	data, err := handler.buildCalendarViewData(ctx, c, state)
	if err != nil {
		handler.logger.Error("build calendar view failed", "month", reference.MonthKey(), "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load calendar")
	}
	return handler.render(c, "calendar", data)
}

// JumpCalendar applies the month and year pickers to the current state.
func (handler *Handler) JumpCalendar(c *fiber.Ctx) error {
	today := handler.today()
	reference, selected, err := resolveCalendarQuery(c.Query("month"), c.Query("day"), today)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	state := calendar.NewState(reference)
	if !selected.IsZero() {
		state.Selection = &calendar.Selection{Date: selected}
	}

	if raw := strings.TrimSpace(c.Query("pick_month")); raw != "" {
		month, err := calendar.MonthByName(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid month")
		}
		state = state.SelectMonth(month)
	}

	if raw := strings.TrimSpace(c.Query("pick_year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid year")
		}
		if !calendar.InYearWindow(today, year) {
			return apiError(c, fiber.StatusBadRequest, "year out of range")
		}
		state = state.SelectYear(year)
	}

	return redirectOrJSON(c, stateURL(state))
}
