package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrFestivalTableInvalid = errors.New("invalid festival table")

type Festival struct {
	Date Date
	Name string
}

// FestivalTable is a read-only date to name mapping. Build it with
// NewFestivalTable; it is never mutated afterwards.
type FestivalTable struct {
	byDate map[Date]string
	sorted []Festival
}

func NewFestivalTable(entries []Festival) (*FestivalTable, error) {
	table := &FestivalTable{
		byDate: make(map[Date]string, len(entries)),
		sorted: make([]Festival, 0, len(entries)),
	}
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty name for %s", ErrFestivalTableInvalid, entry.Date.ISO())
		}
		if entry.Date.IsZero() {
			return nil, fmt.Errorf("%w: missing date for %q", ErrFestivalTableInvalid, name)
		}
		if existing, ok := table.byDate[entry.Date]; ok {
			return nil, fmt.Errorf("%w: %s listed twice (%q, %q)", ErrFestivalTableInvalid, entry.Date.ISO(), existing, name)
		}
		table.byDate[entry.Date] = name
		table.sorted = append(table.sorted, Festival{Date: entry.Date, Name: name})
	}

	sort.Slice(table.sorted, func(i, j int) bool {
		return table.sorted[i].Date.Before(table.sorted[j].Date)
	})
	return table, nil
}

// Lookup returns the festival on date, if any.
func (table *FestivalTable) Lookup(date Date) (string, bool) {
	if table == nil {
		return "", false
	}
	name, ok := table.byDate[date]
	return name, ok
}

// InMonth lists the festivals of the reference month and year, ascending by date.
func (table *FestivalTable) InMonth(reference Date) []Festival {
	result := make([]Festival, 0)
	if table == nil {
		return result
	}
	for _, festival := range table.sorted {
		if festival.Date.SameMonth(reference) {
			result = append(result, festival)
		}
	}
	return result
}

// All returns every festival ascending by date.
func (table *FestivalTable) All() []Festival {
	if table == nil {
		return []Festival{}
	}
	result := make([]Festival, len(table.sorted))
	copy(result, table.sorted)
	return result
}

func (table *FestivalTable) Len() int {
	if table == nil {
		return 0
	}
	return len(table.sorted)
}

// DefaultFestivals is the built-in 2025 table.
func DefaultFestivals() *FestivalTable {
	table, err := NewFestivalTable(defaultFestivalEntries())
	if err != nil {
		panic(err)
	}
	return table
}

func defaultFestivalEntries() []Festival {
	raw := []struct {
		date string
		name string
	}{
		{"2025-01-01", "New Year's Day"},
		{"2025-01-14", "Makar Sankranti"},
		{"2025-01-26", "Republic Day"},
		{"2025-02-14", "Valentine's Day"},
		{"2025-03-08", "Maha Shivratri"},
		{"2025-03-29", "Holi"},
		{"2025-04-14", "Ambedkar Jayanti"},
		{"2025-04-17", "Ram Navami"},
		{"2025-05-01", "Labour Day"},
		{"2025-05-12", "Buddha Purnima"},
		{"2025-05-23", "Narasimha Jayanti"},
		{"2025-06-04", "Ganga Dussehra"},
		{"2025-06-06", "Nirjala Ekadashi"},
		{"2025-06-20", "Jagannath Rath Yatra"},
		{"2025-06-25", "Eid al-Adha"},
		{"2025-07-07", "Devshayani Ekadashi"},
		{"2025-07-16", "Guru Purnima"},
		{"2025-08-15", "Independence Day"},
		{"2025-08-19", "Raksha Bandhan"},
		{"2025-08-25", "Krishna Janmashtami"},
		{"2025-08-28", "Aavani Avittam"},
		{"2025-09-06", "Ganesh Chaturthi"},
		{"2025-10-02", "Gandhi Jayanti"},
		{"2025-10-20", "Valmiki Jayanti"},
		{"2025-10-21", "Karwa Chauth"},
		{"2025-11-01", "Kannada Rajyotsava"},
		{"2025-11-09", "Diwali"},
		{"2025-11-14", "Children's Day"},
		{"2025-12-25", "Christmas"},
	}

	entries := make([]Festival, 0, len(raw))
	for _, item := range raw {
		date, err := ParseISO(item.date)
		if err != nil {
			panic(err)
		}
		entries = append(entries, Festival{Date: date, Name: item.name})
	}
	return entries
}
