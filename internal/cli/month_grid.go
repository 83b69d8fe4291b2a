package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/utsav/internal/calendar"
	"github.com/terraincognita07/utsav/internal/services"
)

const gridCellWidth = 6

// RunGridCommand prints the month containing reference as a text grid.
func RunGridCommand(ctx context.Context, service *services.CalendarService, reference calendar.Date, today calendar.Date, out io.Writer) error {
	view, err := service.MonthView(ctx, reference, today)
	if err != nil {
		return err
	}
	writeMonthGrid(out, view)
	return nil
}

func writeMonthGrid(out io.Writer, view services.MonthView) {
	fmt.Fprintf(out, "%s %d\n", calendar.MonthNames[view.Reference.Month-1], view.Reference.Year)

	var header strings.Builder
	for _, weekday := range view.Weekdays {
		header.WriteString(fmt.Sprintf(" %-*s", gridCellWidth-1, weekday.String()[:3]))
	}
	fmt.Fprintln(out, strings.TrimRight(header.String(), " "))

	for start := 0; start < len(view.Days); start += 7 {
		var row strings.Builder
		for _, day := range view.Days[start : start+7] {
			row.WriteString(fmt.Sprintf("%-*s", gridCellWidth, gridCell(day)))
		}
		fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
	}
	fmt.Fprintln(out, "* festival  + note  [dd] today  (dd) other month")
}

func gridCell(day services.DayView) string {
	var cell string
	switch {
	case day.IsToday:
		cell = fmt.Sprintf("[%2d]", day.Day)
	case !day.InMonth:
		cell = fmt.Sprintf("(%2d)", day.Day)
	default:
		cell = fmt.Sprintf(" %2d", day.Day)
	}
	if day.HasFestival() {
		cell += "*"
	}
	if day.HasNote() {
		cell += "+"
	}
	return cell
}

// RunFestivalsCommand prints the festivals falling in the month of reference.
func RunFestivalsCommand(festivals *calendar.FestivalTable, reference calendar.Date, out io.Writer) {
	entries := festivals.InMonth(reference)
	if len(entries) == 0 {
		fmt.Fprintln(out, "No festivals this month")
		return
	}

	fmt.Fprintf(out, "Festivals in %s %d\n", calendar.MonthNames[reference.Month-1], reference.Year)
	for _, festival := range entries {
		fmt.Fprintf(out, "%s  %s\n", festival.Date.ISO(), festival.Name)
	}
}
