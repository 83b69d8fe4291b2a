package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/utsav/internal/calendar"
)

type brokenNoteStore struct{}

var errBrokenStore = errors.New("store offline")

func (brokenNoteStore) Note(context.Context, calendar.Date) (string, bool, error) {
	return "", false, errBrokenStore
}

func (brokenNoteStore) SaveNote(context.Context, calendar.Date, string) error {
	return errBrokenStore
}

func (brokenNoteStore) NotesBetween(context.Context, calendar.Date, calendar.Date) (map[calendar.Date]string, error) {
	return nil, errBrokenStore
}

func mustParseDay(t *testing.T, raw string) calendar.Date {
	t.Helper()
	date, err := calendar.ParseISO(raw)
	if err != nil {
		t.Fatalf("parse day %s: %v", raw, err)
	}
	return date
}

func findDay(t *testing.T, view MonthView, raw string) DayView {
	t.Helper()
	for _, day := range view.Days {
		if day.DateString == raw {
			return day
		}
	}
	t.Fatalf("day %s not in view", raw)
	return DayView{}
}

func TestMonthViewAttachesFestivalAndNoteBadgesIndependently(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := calendar.NewMemoryNoteStore()
	service := NewCalendarService(calendar.DefaultFestivals(), store, time.Sunday)

	_ = store.SaveNote(ctx, mustParseDay(t, "2025-03-29"), "colours with cousins")
	_ = store.SaveNote(ctx, mustParseDay(t, "2025-03-10"), "dentist")
	_ = store.SaveNote(ctx, mustParseDay(t, "2025-03-11"), "")
	_ = store.SaveNote(ctx, mustParseDay(t, "2025-04-05"), "trailing day note")

	view, err := service.MonthView(ctx, mustParseDay(t, "2025-03-01"), mustParseDay(t, "2025-03-10"))
	if err != nil {
		t.Fatalf("month view: %v", err)
	}
	if len(view.Days) != 42 {
		t.Fatalf("expected 42 days, got %d", len(view.Days))
	}

	holi := findDay(t, view, "2025-03-29")
	if holi.Festival != "Holi" || holi.Note != "colours with cousins" {
		t.Fatalf("expected both badges on Holi, got %+v", holi)
	}
	shivratri := findDay(t, view, "2025-03-08")
	if !shivratri.HasFestival() || shivratri.HasNote() {
		t.Fatalf("expected festival only on 2025-03-08, got %+v", shivratri)
	}
	dentist := findDay(t, view, "2025-03-10")
	if dentist.HasFestival() || !dentist.HasNote() || !dentist.IsToday {
		t.Fatalf("expected note only and today on 2025-03-10, got %+v", dentist)
	}
	if findDay(t, view, "2025-03-11").HasNote() {
		t.Fatal("expected empty saved note to render no badge")
	}
	trailing := findDay(t, view, "2025-04-05")
	if trailing.InMonth || trailing.Note != "trailing day note" {
		t.Fatalf("expected dimmed trailing day with note, got %+v", trailing)
	}

	if len(view.Festivals) != 2 || view.Festivals[0].Name != "Maha Shivratri" || view.Festivals[1].Name != "Holi" {
		t.Fatalf("unexpected festival panel %+v", view.Festivals)
	}
	if len(view.Years) != 100 || view.Years[0] != 1975 {
		t.Fatalf("unexpected year window start %d (%d)", view.Years[0], len(view.Years))
	}
}

func TestSaveNoteThroughServiceReturnsIdleState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewCalendarService(nil, nil, time.Monday)
	date := mustParseDay(t, "2025-08-15")

	state, err := service.SaveNote(ctx, calendar.NewState(mustParseDay(t, "2025-08-01")), date, "Family lunch")
	if err != nil {
		t.Fatalf("save note: %v", err)
	}
	if state.Editing() || state.Reference.ISO() != "2025-08-01" {
		t.Fatalf("expected idle state on August, got %+v", state)
	}

	detail, err := service.DayDetail(ctx, date)
	if err != nil {
		t.Fatalf("day detail: %v", err)
	}
	if detail.Note != "Family lunch" || detail.Festival != "Independence Day" {
		t.Fatalf("unexpected detail %+v", detail)
	}

	reopened, err := service.Open(ctx, state, date)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Selection.Draft != "Family lunch" {
		t.Fatalf("expected prefilled draft, got %q", reopened.Selection.Draft)
	}
}

func TestServiceWrapsStoreFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewCalendarService(calendar.DefaultFestivals(), brokenNoteStore{}, time.Sunday)
	date := mustParseDay(t, "2025-05-01")

	if _, err := service.MonthView(ctx, date, date); !errors.Is(err, ErrCalendarLoadFailed) {
		t.Fatalf("expected ErrCalendarLoadFailed, got %v", err)
	}
	if _, err := service.DayDetail(ctx, date); !errors.Is(err, ErrNoteLoadFailed) {
		t.Fatalf("expected ErrNoteLoadFailed, got %v", err)
	}
	if _, err := service.SaveNote(ctx, calendar.NewState(date), date, "x"); !errors.Is(err, ErrNoteLoadFailed) {
		t.Fatalf("expected ErrNoteLoadFailed from the click step, got %v", err)
	}
}
