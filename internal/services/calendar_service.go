package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/utsav/internal/calendar"
)

var (
	ErrCalendarLoadFailed = errors.New("load calendar failed")
	ErrNoteLoadFailed     = errors.New("load note failed")
	ErrNoteSaveFailed     = errors.New("save note failed")
)

type DayView struct {
	Date       calendar.Date
	DateString string
	Day        int
	InMonth    bool
	IsToday    bool
	Festival   string
	Note       string
}

func (day DayView) HasFestival() bool {
	return day.Festival != ""
}

// HasNote is false for a saved empty note; such a date shows no badge.
func (day DayView) HasNote() bool {
	return day.Note != ""
}

type MonthView struct {
	Reference calendar.Date
	Today     calendar.Date
	Weekdays  []time.Weekday
	Days      []DayView
	Festivals []calendar.Festival
	Years     []int
}

type DayDetail struct {
	Date     calendar.Date
	Festival string
	Note     string
}

type CalendarService struct {
	festivals *calendar.FestivalTable
	notes     calendar.NoteStore
	weekStart time.Weekday
}

func NewCalendarService(festivals *calendar.FestivalTable, notes calendar.NoteStore, weekStart time.Weekday) *CalendarService {
	if festivals == nil {
		festivals = calendar.DefaultFestivals()
	}
	if notes == nil {
		notes = calendar.NewMemoryNoteStore()
	}
	return &CalendarService{
		festivals: festivals,
		notes:     notes,
		weekStart: weekStart,
	}
}

func (service *CalendarService) Festivals() *calendar.FestivalTable {
	return service.festivals
}

func (service *CalendarService) WeekStart() time.Weekday {
	return service.weekStart
}

// MonthView builds the grid for reference and attaches festival and note badges.
func (service *CalendarService) MonthView(ctx context.Context, reference calendar.Date, today calendar.Date) (MonthView, error) {
	cells := calendar.BuildGrid(reference, today, service.weekStart)
	notes, err := service.notes.NotesBetween(ctx, cells[0].Date, cells[len(cells)-1].Date)
	if err != nil {
		return MonthView{}, fmt.Errorf("%w: %v", ErrCalendarLoadFailed, err)
	}

	days := make([]DayView, 0, len(cells))
	for _, cell := range cells {
		festival, _ := service.festivals.Lookup(cell.Date)
		days = append(days, DayView{
			Date:       cell.Date,
			DateString: cell.Date.ISO(),
			Day:        cell.Date.Day,
			InMonth:    cell.InMonth,
			IsToday:    cell.IsToday,
			Festival:   festival,
			Note:       notes[cell.Date],
		})
	}

	return MonthView{
		Reference: reference.StartOfMonth(),
		Today:     today,
		Weekdays:  calendar.Weekdays(service.weekStart),
		Days:      days,
		Festivals: service.festivals.InMonth(reference),
		Years:     calendar.YearWindow(today),
	}, nil
}

func (service *CalendarService) DayDetail(ctx context.Context, date calendar.Date) (DayDetail, error) {
	note, _, err := service.notes.Note(ctx, date)
	if err != nil {
		return DayDetail{}, fmt.Errorf("%w: %v", ErrNoteLoadFailed, err)
	}
	festival, _ := service.festivals.Lookup(date)
	return DayDetail{Date: date, Festival: festival, Note: note}, nil
}

// Open moves state into editing date, seeding the draft from the store.
func (service *CalendarService) Open(ctx context.Context, state calendar.State, date calendar.Date) (calendar.State, error) {
	next, err := state.Click(ctx, service.notes, date)
	if err != nil {
		return state, fmt.Errorf("%w: %v", ErrNoteLoadFailed, err)
	}
	return next, nil
}

// SaveNote opens date, replaces the draft with note and commits it.
func (service *CalendarService) SaveNote(ctx context.Context, state calendar.State, date calendar.Date, note string) (calendar.State, error) {
	editing, err := service.Open(ctx, state, date)
	if err != nil {
		return state, err
	}
	saved, err := editing.Edit(note).Save(ctx, service.notes)
	if err != nil {
		return state, fmt.Errorf("%w: %v", ErrNoteSaveFailed, err)
	}
	return saved, nil
}

// NotesBetween exposes the store for exports.
func (service *CalendarService) NotesBetween(ctx context.Context, from calendar.Date, to calendar.Date) (map[calendar.Date]string, error) {
	notes, err := service.notes.NotesBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCalendarLoadFailed, err)
	}
	return notes, nil
}
