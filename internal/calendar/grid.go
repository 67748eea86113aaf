// Package calendar computes the fixed six-week day grid for a displayed
// month. All functions are pure: the grid is a deterministic function of
// (year, month), and month navigation never depends on wall-clock time.
package calendar

import (
	"time"

	"notecal/internal/note"
)

// GridCells is the fixed cell budget: six full Sunday-first weeks. The grid
// never needs a seventh row and never falls short, for any month and offset.
const GridCells = 42

// Day is one cell of the calendar grid.
type Day struct {
	// Day is the day-of-month number shown in the cell (1..31)
	Day int `json:"day"`

	// InMonth is false for leading/trailing filler days of adjacent months
	InMonth bool `json:"in_month"`

	// Date is the full calendar date in YYYY-MM-DD form
	Date string `json:"date"`
}

// MonthGrid returns exactly GridCells days for the given month, starting on
// the Sunday on or before the first of the month and spanning into the
// previous and next months as needed.
func MonthGrid(year int, month time.Month) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday()) // 0 = Sunday
	start := first.AddDate(0, 0, -lead)

	days := make([]Day, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, Day{
			Day:     d.Day(),
			InMonth: d.Month() == month,
			Date:    d.Format(note.DateLayout),
		})
	}
	return days
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PrevMonth steps the displayed month backward, clamping to day 1 so short
// months never carry a day-count bug.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// NextMonth steps the displayed month forward, clamping to day 1.
func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

// MonthLabel formats a month heading such as "January 2024".
func MonthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// WeekdayNames returns the Sunday-first week header labels.
func WeekdayNames() []string {
	return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}
