package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utsav/internal/calendar"
)

func (handler *Handler) CalendarDayPanel(c *fiber.Ctx) error {
	date, err := calendar.ParseISO(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid date")
	}

	state := calendar.NewState(resolveMonthFallback(c.Query("month"), date))
	state, err = handler.calendar.Open(c.UserContext(), state, date)
	if err != nil {
		handler.logger.Error("open day editor failed", "date", date.ISO(), "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load note")
	}

	return handler.renderPartial(c, "day_editor_partial", fiber.Map{
		"Editor": handler.buildDayEditorView(c, state),
	})
}

// SaveCalendarDay replays click, edit and save for the submitted form and
// returns the visitor to the idle month view.
func (handler *Handler) SaveCalendarDay(c *fiber.Ctx) error {
	date, err := calendar.ParseISO(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	note := c.FormValue("note")
	state := calendar.NewState(resolveMonthFallback(c.FormValue("month"), date))

	ctx := c.UserContext()
	saved, err := handler.calendar.SaveNote(ctx, state, date, note)
	if err != nil {
		handler.logger.Error("save note failed", "date", date.ISO(), "error", err)
		if isHTMX(c) || acceptsJSON(c) {
			return apiError(c, fiber.StatusInternalServerError, "failed to save note")
		}
		return handler.renderSaveFailure(c, state, date, note)
	}

	return redirectOrJSON(c, stateURL(saved))
}

// renderSaveFailure shows the page with the editor still open on the
// submitted draft.
func (handler *Handler) renderSaveFailure(c *fiber.Ctx, state calendar.State, date calendar.Date, note string) error {
	editing := state
	editing.Selection = &calendar.Selection{Date: date, Draft: note}

	data, err := handler.buildCalendarViewData(c.UserContext(), c, editing)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to save note")
	}
	editor := handler.buildDayEditorView(c, editing)
	editor.ErrorKey = "calendar.error.save_failed"
	data["Editor"] = editor

	c.Status(fiber.StatusInternalServerError)
	return handler.render(c, "calendar", data)
}
