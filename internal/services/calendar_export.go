package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/emersion/go-ical"
	"github.com/terraincognita07/utsav/internal/calendar"
)

const icsProductID = "-//Utsav//Festival Calendar//EN"

var (
	exportRangeStart = calendar.NewDate(1, time.January, 1)
	exportRangeEnd   = calendar.NewDate(9999, time.December, 31)
)

// ExportCalendar returns every festival and every non-empty note as all-day
// events, ordered by date with the festival first.
func (service *CalendarService) ExportCalendar(ctx context.Context, stamp time.Time) (*ical.Calendar, error) {
	notes, err := service.NotesBetween(ctx, exportRangeStart, exportRangeEnd)
	if err != nil {
		return nil, err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icsProductID)

	for _, festival := range service.festivals.All() {
		cal.Children = append(cal.Children, allDayEvent(festival.Date, "festival", festival.Name, stamp).Component)
	}

	noteDates := make([]calendar.Date, 0, len(notes))
	for date, note := range notes {
		if note == "" {
			continue
		}
		noteDates = append(noteDates, date)
	}
	for _, date := range noteDates {
		cal.Children = append(cal.Children, allDayEvent(date, "note", notes[date], stamp).Component)
	}

	sort.SliceStable(cal.Children, func(i, j int) bool {
		return eventStart(cal.Children[i]) < eventStart(cal.Children[j])
	})
	return cal, nil
}

func allDayEvent(date calendar.Date, kind string, summary string, stamp time.Time) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%s@utsav", date.ISO(), kind))
	event.Props.SetText(ical.PropSummary, summary)
	event.Props.SetDate(ical.PropDateTimeStart, date.Time(time.UTC))
	event.Props.SetDate(ical.PropDateTimeEnd, date.AddDays(1).Time(time.UTC))
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	if kind == "festival" {
		event.Props.SetText(ical.PropCategories, "Festival")
	}
	return event
}

func eventStart(component *ical.Component) string {
	if prop := component.Props.Get(ical.PropDateTimeStart); prop != nil {
		return prop.Value
	}
	return ""
}
