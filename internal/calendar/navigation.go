package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	yearsBefore = 50
	yearWindow  = 100
)

// MonthNames are the twelve fixed month options, January first.
var MonthNames = [12]string{
	"January", "February", "March", "April",
	"May", "June", "July", "August",
	"September", "October", "November", "December",
}

// YearWindow lists the selectable years: 50 before through 49 after now's year.
func YearWindow(now Date) []int {
	years := make([]int, yearWindow)
	for index := range years {
		years[index] = now.Year - yearsBefore + index
	}
	return years
}

func InYearWindow(now Date, year int) bool {
	first := now.Year - yearsBefore
	return year >= first && year < first+yearWindow
}

// MonthByName resolves an English month name, or a 1-12 number, to a month.
func MonthByName(raw string) (time.Month, error) {
	trimmed := strings.TrimSpace(raw)
	for index, name := range MonthNames {
		if strings.EqualFold(name, trimmed) {
			return time.Month(index + 1), nil
		}
	}
	if number, err := strconv.Atoi(trimmed); err == nil && number >= 1 && number <= 12 {
		return time.Month(number), nil
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidMonth, raw)
}

// ParseWeekStart accepts "sunday" or "monday".
func ParseWeekStart(raw string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("unsupported week start %q", raw)
	}
}
