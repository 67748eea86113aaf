package ops

import (
	"database/sql"
	"fmt"
	"time"

	"notecal/internal/aggregate"
	"notecal/internal/calendar"
	"notecal/internal/db"
	"notecal/internal/errors"
	"notecal/internal/note"
)

// MonthInput contains parameters for the Month operation.
type MonthInput struct {
	Year  int
	Month int // 1-12; Year and Month default to the current month when zero

	// Selected is an optional highlighted date (YYYY-MM-DD)
	Selected string
}

// DayCell is one calendar cell decorated with its note summary.
type DayCell struct {
	calendar.Day

	// Count is the number of notes attached to this date
	Count int `json:"count,omitempty"`

	// Categories holds up to three distinct note categories for badge dots;
	// More reports that further notes exist beyond the badge cap
	Categories []note.Category `json:"categories,omitempty"`
	More       bool            `json:"more,omitempty"`

	IsToday    bool `json:"is_today,omitempty"`
	IsSelected bool `json:"is_selected,omitempty"`
}

// MonthOutput contains the result of the Month operation.
type MonthOutput struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Label     string    `json:"label"`
	Weekdays  []string  `json:"weekdays"`
	Days      []DayCell `json:"days"`
	PrevYear  int       `json:"prev_year"`
	PrevMonth int       `json:"prev_month"`
	NextYear  int       `json:"next_year"`
	NextMonth int       `json:"next_month"`
}

// Month builds the 42-cell calendar view for a month, badged with per-day
// note counts and category dots from the full collection.
func Month(database *sql.DB, input MonthInput) (*MonthOutput, error) {
	now := time.Now().UTC()

	year, month := input.Year, input.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("month must be 1-12, got %d", month))
	}
	if year < 1 {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("year must be positive, got %d", year))
	}
	if input.Selected != "" {
		if _, err := note.ParseDate(input.Selected); err != nil {
			return nil, errors.NewInvalidRequest(err.Error())
		}
	}

	notes, err := db.ListAll(database)
	if err != nil {
		return nil, err
	}
	buckets := aggregate.BucketByDay(notes)

	today := now.Format(note.DateLayout)
	grid := calendar.MonthGrid(year, time.Month(month))

	days := make([]DayCell, 0, len(grid))
	for _, d := range grid {
		b := buckets[d.Date]
		days = append(days, DayCell{
			Day:        d,
			Count:      b.Count,
			Categories: b.Categories,
			More:       b.Count > aggregate.MaxBucketCategories,
			IsToday:    d.Date == today,
			IsSelected: d.Date == input.Selected,
		})
	}

	prevYear, prevMonth := calendar.PrevMonth(year, time.Month(month))
	nextYear, nextMonth := calendar.NextMonth(year, time.Month(month))

	return &MonthOutput{
		Year:      year,
		Month:     month,
		Label:     calendar.MonthLabel(year, time.Month(month)),
		Weekdays:  calendar.WeekdayNames(),
		Days:      days,
		PrevYear:  prevYear,
		PrevMonth: int(prevMonth),
		NextYear:  nextYear,
		NextMonth: int(nextMonth),
	}, nil
}
