// Package aggregate filters, sorts, and buckets note collections for the
// list and calendar views. All functions operate on immutable snapshots:
// inputs are never mutated, and identical inputs produce identical output
// order.
package aggregate

import (
	"sort"
	"strings"

	"notecal/internal/note"
)

// Filter selects notes for the current view. Zero-valued fields are
// inactive; active fields combine as logical AND.
type Filter struct {
	// Search matches case-insensitively as a substring of title or content
	Search string

	// Category matches exactly when non-empty
	Category note.Category

	// Date matches the note's calendar date exactly (YYYY-MM-DD)
	Date string
}

// Apply filters the collection and returns matches sorted pinned-first, then
// by updated time descending. The input slice is left untouched, and the
// results are deep copies so mutating them never reaches the snapshot.
func Apply(notes []note.Note, f Filter) []note.Note {
	result := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if Matches(n, f) {
			result = append(result, n.Clone())
		}
	}
	Sort(result)
	return result
}

// Matches reports whether a single note passes the filter.
func Matches(n note.Note, f Filter) bool {
	if f.Search != "" && !matchesSearch(n, f.Search) {
		return false
	}
	if f.Category != "" && n.Category != f.Category {
		return false
	}
	if f.Date != "" && n.Date != f.Date {
		return false
	}
	return true
}

// matchesSearch performs a case-insensitive substring match against the
// note's title or content.
func matchesSearch(n note.Note, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// Sort orders notes in place: pinned before unpinned, then most recently
// updated first. The sort is stable, so equal keys keep collection order.
func Sort(notes []note.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Pinned != notes[j].Pinned {
			return notes[i].Pinned
		}
		return notes[i].UpdatedAt > notes[j].UpdatedAt
	})
}
