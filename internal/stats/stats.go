// Package stats derives the sidebar summary counters and the recent-activity
// feed from a note snapshot. Computations are pure over the snapshot plus an
// explicit "now"; nothing is cached because the counters are point-in-time.
package stats

import (
	"fmt"
	"time"

	"notecal/internal/note"
)

// CategoryCount pairs a category definition with its note count.
type CategoryCount struct {
	note.CategoryDef
	Count int `json:"count"`
}

// Summary holds the quick-stats counters.
type Summary struct {
	TotalNotes     int             `json:"total_notes"`
	ThisWeek       int             `json:"this_week"`
	CompletedTasks int             `json:"completed_tasks"`
	Categories     []CategoryCount `json:"categories"`
}

// Compute derives the summary counters from the full collection.
//
// Category counts follow the static definition order and include zeroes.
// Notes carrying an unrecognized category (an upstream contract violation)
// fall into no bucket. The this-week window is the inclusive [now-7d, now]
// span over the note's calendar date; an unparseable date fails the whole
// computation rather than producing a silently wrong counter.
func Compute(notes []note.Note, now time.Time) (*Summary, error) {
	s := &Summary{
		TotalNotes: len(notes),
		Categories: make([]CategoryCount, 0, len(note.Categories())),
	}

	counts := make(map[note.Category]int)

	// Note dates are midnight-anchored, so the lower bound must be truncated
	// to its calendar day or a date exactly seven days back falls outside the
	// window whenever now carries a time of day.
	weekAgo := now.AddDate(0, 0, -7)
	weekAgo = time.Date(weekAgo.Year(), weekAgo.Month(), weekAgo.Day(), 0, 0, 0, 0, time.UTC)

	for _, n := range notes {
		counts[n.Category]++
		s.CompletedTasks += n.CompletedTasks()

		d, err := note.ParseDate(n.Date)
		if err != nil {
			return nil, fmt.Errorf("note %s: %w", n.ID, err)
		}
		if !d.Before(weekAgo) && !d.After(now) {
			s.ThisWeek++
		}
	}

	for _, def := range note.Categories() {
		s.Categories = append(s.Categories, CategoryCount{
			CategoryDef: def,
			Count:       counts[def.ID],
		})
	}

	return s, nil
}
