package calendar

import "time"

// Cell is one day of the displayed grid.
type Cell struct {
	Date    Date
	InMonth bool
	IsToday bool
}

// GridBounds returns the first and last day shown for the month of reference.
func GridBounds(reference Date, weekStart time.Weekday) (Date, Date) {
	return reference.StartOfMonth().StartOfWeek(weekStart), reference.EndOfMonth().EndOfWeek(weekStart)
}

// BuildGrid lists every day from the week-aligned start of the reference month
// to the week-aligned end, inclusive. The result length is a multiple of 7.
func BuildGrid(reference Date, today Date, weekStart time.Weekday) []Cell {
	gridStart, gridEnd := GridBounds(reference, weekStart)

	cells := make([]Cell, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDays(1) {
		cells = append(cells, Cell{
			Date:    day,
			InMonth: day.SameMonth(reference),
			IsToday: day.Equal(today),
		})
	}
	return cells
}

// Weekdays returns the seven column headers starting at weekStart.
func Weekdays(weekStart time.Weekday) []time.Weekday {
	days := make([]time.Weekday, 7)
	for index := range days {
		days[index] = time.Weekday((int(weekStart) + index) % 7)
	}
	return days
}
