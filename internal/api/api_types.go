package api

import (
	"github.com/terraincognita07/utsav/internal/calendar"
	"github.com/terraincognita07/utsav/internal/services"
)

type calendarDayPayload struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	InMonth  bool   `json:"in_month"`
	IsToday  bool   `json:"is_today"`
	Festival string `json:"festival,omitempty"`
	Note     string `json:"note,omitempty"`
}

type festivalPayload struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type calendarPayload struct {
	Month     string               `json:"month"`
	PrevMonth string               `json:"prev_month"`
	NextMonth string               `json:"next_month"`
	Today     string               `json:"today"`
	WeekStart string               `json:"week_start"`
	Days      []calendarDayPayload `json:"days"`
	Festivals []festivalPayload    `json:"festivals"`
	Years     []int                `json:"years"`
}

type notePayload struct {
	Date     string `json:"date"`
	Note     string `json:"note"`
	Festival string `json:"festival,omitempty"`
}

type noteInput struct {
	Note *string `json:"note" form:"note"`
}

func newFestivalPayloads(festivals []calendar.Festival) []festivalPayload {
	payloads := make([]festivalPayload, 0, len(festivals))
	for _, festival := range festivals {
		payloads = append(payloads, festivalPayload{Date: festival.Date.ISO(), Name: festival.Name})
	}
	return payloads
}

func newCalendarPayload(view services.MonthView, weekStart string) calendarPayload {
	days := make([]calendarDayPayload, 0, len(view.Days))
	for _, day := range view.Days {
		days = append(days, calendarDayPayload{
			Date:     day.DateString,
			Day:      day.Day,
			InMonth:  day.InMonth,
			IsToday:  day.IsToday,
			Festival: day.Festival,
			Note:     day.Note,
		})
	}

	return calendarPayload{
		Month:     view.Reference.MonthKey(),
		PrevMonth: view.Reference.AddMonths(-1).MonthKey(),
		NextMonth: view.Reference.AddMonths(1).MonthKey(),
		Today:     view.Today.ISO(),
		WeekStart: weekStart,
		Days:      days,
		Festivals: newFestivalPayloads(view.Festivals),
		Years:     view.Years,
	}
}

func newNotePayload(detail services.DayDetail) notePayload {
	return notePayload{Date: detail.Date.ISO(), Note: detail.Note, Festival: detail.Festival}
}
