package api

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utsav/internal/calendar"
)

func (handler *Handler) buildCalendarViewData(ctx context.Context, c *fiber.Ctx, state calendar.State) (fiber.Map, error) {
	language := currentLanguage(c)
	messages := currentMessages(c)
	today := handler.today()

	view, err := handler.calendar.MonthView(ctx, state.Reference, today)
	if err != nil {
		return nil, err
	}

	data := fiber.Map{
		"Title":        localizedPageTitle(messages, "meta.title.calendar", "Utsav | Festival Calendar"),
		"MonthLabel":   localizedMonthYear(language, view.Reference),
		"MonthValue":   view.Reference.MonthKey(),
		"PrevURL":      stateURL(state.PrevMonth()),
		"NextURL":      stateURL(state.NextMonth()),
		"Weekdays":     localizedWeekdays(language, view.Weekdays),
		"Days":         view.Days,
		"Festivals":    view.Festivals,
		"MonthOptions": buildMonthOptions(language, view.Reference),
		"YearOptions":  buildYearOptions(view.Years, view.Reference),
		"Today":        today.ISO(),
	}
	if state.Editing() {
		data["Editor"] = handler.buildDayEditorView(c, state)
	}
	return data, nil
}

func (handler *Handler) buildDayEditorView(c *fiber.Ctx, state calendar.State) dayEditorView {
	festival, _ := handler.calendar.Festivals().Lookup(state.Selection.Date)
	return dayEditorView{
		DateString: state.Selection.Date.ISO(),
		MonthValue: state.Reference.MonthKey(),
		Festival:   festival,
		Draft:      state.Selection.Draft,
		Locked:     !handler.notesUnlocked(c),
		CloseURL:   stateURL(state.Close()),
		UnlockNext: url.QueryEscape(stateURL(state)),
	}
}
