package calendar

import (
	"testing"
	"time"
)

func TestBuildGridCoversWeekAlignedMonth(t *testing.T) {
	t.Parallel()

	today := mustParseISO(t, "2025-08-15")
	for _, weekStart := range []time.Weekday{time.Sunday, time.Monday} {
		for year := 2019; year <= 2031; year++ {
			for month := time.January; month <= time.December; month++ {
				reference := Date{Year: year, Month: month, Day: 1}
				cells := BuildGrid(reference, today, weekStart)

				if len(cells)%7 != 0 {
					t.Fatalf("%s week start %s: grid length %d not a multiple of 7", reference.MonthKey(), weekStart, len(cells))
				}
				if want := reference.StartOfMonth().StartOfWeek(weekStart); cells[0].Date != want {
					t.Fatalf("%s: expected first cell %s, got %s", reference.MonthKey(), want, cells[0].Date)
				}
				if want := reference.EndOfMonth().EndOfWeek(weekStart); cells[len(cells)-1].Date != want {
					t.Fatalf("%s: expected last cell %s, got %s", reference.MonthKey(), want, cells[len(cells)-1].Date)
				}
				if cells[0].Date.Weekday() != weekStart {
					t.Fatalf("%s: first cell falls on %s", reference.MonthKey(), cells[0].Date.Weekday())
				}

				previous := reference.AddMonths(-1)
				next := reference.AddMonths(1)
				inMonth := 0
				for index, cell := range cells {
					if index > 0 && cell.Date != cells[index-1].Date.AddDays(1) {
						t.Fatalf("%s: cells not consecutive at %d", reference.MonthKey(), index)
					}
					belongs := 0
					for _, candidate := range []Date{reference, previous, next} {
						if cell.Date.SameMonth(candidate) {
							belongs++
						}
					}
					if belongs != 1 {
						t.Fatalf("%s: cell %s belongs to %d candidate months", reference.MonthKey(), cell.Date, belongs)
					}
					if cell.InMonth != cell.Date.SameMonth(reference) {
						t.Fatalf("%s: wrong InMonth flag for %s", reference.MonthKey(), cell.Date)
					}
					if cell.InMonth {
						inMonth++
					}
				}
				if inMonth != reference.DaysInMonth() {
					t.Fatalf("%s: expected %d in-month cells, got %d", reference.MonthKey(), reference.DaysInMonth(), inMonth)
				}
			}
		}
	}
}

func TestBuildGridMarch2025(t *testing.T) {
	t.Parallel()

	cells := BuildGrid(mustParseISO(t, "2025-03-01"), mustParseISO(t, "2025-03-08"), time.Sunday)
	if len(cells) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(cells))
	}
	if cells[0].Date.ISO() != "2025-02-23" || cells[41].Date.ISO() != "2025-04-05" {
		t.Fatalf("unexpected bounds %s..%s", cells[0].Date, cells[41].Date)
	}

	todayCount := 0
	for _, cell := range cells {
		if cell.IsToday {
			todayCount++
			if cell.Date.ISO() != "2025-03-08" {
				t.Fatalf("unexpected today cell %s", cell.Date)
			}
		}
	}
	if todayCount != 1 {
		t.Fatalf("expected exactly one today cell, got %d", todayCount)
	}
}

func TestBuildGridFourWeekFebruary(t *testing.T) {
	t.Parallel()

	cells := BuildGrid(mustParseISO(t, "2015-02-01"), mustParseISO(t, "2025-01-01"), time.Sunday)
	if len(cells) != 28 {
		t.Fatalf("expected 28 cells for February 2015, got %d", len(cells))
	}
	for _, cell := range cells {
		if !cell.InMonth || cell.IsToday {
			t.Fatalf("unexpected flags on %s: %+v", cell.Date, cell)
		}
	}
}

func TestWeekdaysRotateFromWeekStart(t *testing.T) {
	t.Parallel()

	days := Weekdays(time.Monday)
	if days[0] != time.Monday || days[6] != time.Sunday {
		t.Fatalf("unexpected monday-first order %v", days)
	}
}
