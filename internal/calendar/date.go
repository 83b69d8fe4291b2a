package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ISOLayout is the key format shared by the festival table, the note store and URLs.
const ISOLayout = "2006-01-02"

// MonthLayout is the query format of a reference month.
const MonthLayout = "2006-01"

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidMonth = errors.New("invalid month")
)

// Date is a calendar day without a time of day or location. The zero value is
// not a valid date; use NewDate, DateOf or ParseISO.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalizes overflowing components the way time.Date does,
// so NewDate(2025, 13, 1) is 2026-01-01.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// DateOf truncates an instant to its wall-clock day in the instant's location.
func DateOf(value time.Time) Date {
	year, month, day := value.Date()
	return Date{Year: year, Month: month, Day: day}
}

func ParseISO(raw string) (Date, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Date{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	parsed, err := time.Parse(ISOLayout, trimmed)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return DateOf(parsed), nil
}

// ParseMonth parses YYYY-MM into the first day of that month.
func ParseMonth(raw string) (Date, error) {
	trimmed := strings.TrimSpace(raw)
	parsed, err := time.Parse(MonthLayout, trimmed)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidMonth, raw)
	}
	return DateOf(parsed), nil
}

// Time returns the date at midnight in location (UTC when nil).
func (d Date) Time(location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, location)
}

func (d Date) noon() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthKey formats the month of d as YYYY-MM.
func (d Date) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

func (d Date) String() string {
	return d.ISO()
}

func (d Date) Weekday() time.Weekday {
	return d.noon().Weekday()
}

func (d Date) DaysInMonth() int {
	return time.Date(d.Year, d.Month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

func (d Date) StartOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

func (d Date) EndOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: d.DaysInMonth()}
}

// StartOfWeek steps back to the nearest weekStart on or before d.
func (d Date) StartOfWeek(weekStart time.Weekday) Date {
	offset := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDays(-offset)
}

// EndOfWeek steps forward to the last day of the week that begins on weekStart.
func (d Date) EndOfWeek(weekStart time.Weekday) Date {
	return d.StartOfWeek(weekStart).AddDays(6)
}

func (d Date) AddDays(days int) Date {
	return DateOf(d.noon().AddDate(0, 0, days))
}

// AddMonths moves by whole months and clamps the day to the target month,
// so 2025-01-31 plus one month is 2025-02-28.
func (d Date) AddMonths(months int) Date {
	target := time.Date(d.Year, d.Month+time.Month(months), 1, 12, 0, 0, 0, time.UTC)
	first := DateOf(target)
	day := d.Day
	if limit := first.DaysInMonth(); day > limit {
		day = limit
	}
	return Date{Year: first.Year, Month: first.Month, Day: day}
}

func (d Date) AddYears(years int) Date {
	return d.AddMonths(12 * years)
}

// WithMonth keeps the year and moves to month, clamping the day.
func (d Date) WithMonth(month time.Month) Date {
	return Date{Year: d.Year, Month: time.January, Day: d.Day}.AddMonths(int(month) - 1)
}

// WithYear keeps the month and moves to year, clamping the day (Feb 29).
func (d Date) WithYear(year int) Date {
	return Date{Year: year, Month: d.Month, Day: 1}.withDayClamped(d.Day)
}

func (d Date) withDayClamped(day int) Date {
	if limit := d.DaysInMonth(); day > limit {
		day = limit
	}
	return Date{Year: d.Year, Month: d.Month, Day: day}
}

func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return compareInts(d.Year, other.Year)
	case d.Month != other.Month:
		return compareInts(int(d.Month), int(other.Month))
	default:
		return compareInts(d.Day, other.Day)
	}
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// SameMonth reports whether d and other fall in the same month of the same year.
func (d Date) SameMonth(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month
}

func compareInts(a int, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
