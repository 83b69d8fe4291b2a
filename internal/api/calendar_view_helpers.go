package api

import (
	"net/url"
	"strings"
	"time"

	"github.com/terraincognita07/utsav/internal/calendar"
)

type monthOption struct {
	Value    int
	Label    string
	Selected bool
}

type yearOption struct {
	Value    int
	Selected bool
}

type dayEditorView struct {
	DateString string
	MonthValue string
	Festival   string
	Draft      string
	Locked     bool
	CloseURL   string
	UnlockNext string
	ErrorKey   string
}

// resolveCalendarQuery reads the month and day query values. A missing month
// follows the selected day, or today when no day is selected. An unparsable
// day is ignored.
func resolveCalendarQuery(monthRaw string, dayRaw string, today calendar.Date) (calendar.Date, calendar.Date, error) {
	reference := today.StartOfMonth()
	monthQuery := strings.TrimSpace(monthRaw)
	if monthQuery != "" {
		parsed, err := calendar.ParseMonth(monthQuery)
		if err != nil {
			return calendar.Date{}, calendar.Date{}, err
		}
		reference = parsed
	}

	selected := calendar.Date{}
	if dayQuery := strings.TrimSpace(dayRaw); dayQuery != "" {
		if day, err := calendar.ParseISO(dayQuery); err == nil {
			selected = day
			if monthQuery == "" {
				reference = day.StartOfMonth()
			}
		}
	}
	return reference, selected, nil
}

// resolveMonthFallback parses raw as YYYY-MM, falling back to the month of date.
func resolveMonthFallback(raw string, date calendar.Date) calendar.Date {
	if reference, err := calendar.ParseMonth(raw); err == nil {
		return reference
	}
	return date.StartOfMonth()
}

func calendarURL(reference calendar.Date, selected calendar.Date) string {
	query := url.Values{}
	query.Set("month", reference.MonthKey())
	if !selected.IsZero() {
		query.Set("day", selected.ISO())
	}
	return "/calendar?" + query.Encode()
}

// stateURL encodes a visitor state as a calendar page link.
func stateURL(state calendar.State) string {
	if state.Editing() {
		return calendarURL(state.Reference, state.Selection.Date)
	}
	return calendarURL(state.Reference, calendar.Date{})
}

func buildMonthOptions(language string, reference calendar.Date) []monthOption {
	options := make([]monthOption, 0, len(calendar.MonthNames))
	for index := range calendar.MonthNames {
		options = append(options, monthOption{
			Value:    index + 1,
			Label:    localizedMonthName(language, time.Month(index+1)),
			Selected: int(reference.Month) == index+1,
		})
	}
	return options
}

func buildYearOptions(years []int, reference calendar.Date) []yearOption {
	options := make([]yearOption, 0, len(years))
	for _, year := range years {
		options = append(options, yearOption{Value: year, Selected: year == reference.Year})
	}
	return options
}
