package stats

import (
	"strings"
	"testing"
	"time"

	"notecal/internal/note"
)

// fixedNow anchors the this-week window: 2026-08-28 noon UTC.
var fixedNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestCompute_Counters(t *testing.T) {
	notes := []note.Note{
		{ID: "a", Date: "2026-08-27", Category: note.CategoryWork, CreatedAt: 1, UpdatedAt: 1},
		{ID: "b", Date: "2026-08-25", Category: note.CategoryWork, CreatedAt: 1, UpdatedAt: 1},
		{ID: "c", Date: "2026-08-01", Category: note.CategoryFood, CreatedAt: 1, UpdatedAt: 1,
			Checklist: []note.ChecklistItem{{ID: "1", Text: "x", Completed: true}, {ID: "2", Text: "y"}}},
		{ID: "d", Date: "2026-09-15", Category: note.CategoryHealth, CreatedAt: 1, UpdatedAt: 1,
			Checklist: []note.ChecklistItem{{ID: "3", Text: "z", Completed: true}}},
	}

	s, err := Compute(notes, fixedNow)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if s.TotalNotes != 4 {
		t.Errorf("TotalNotes = %d, want 4", s.TotalNotes)
	}
	if s.ThisWeek != 2 {
		t.Errorf("ThisWeek = %d, want 2 (c is too old, d is in the future)", s.ThisWeek)
	}
	if s.CompletedTasks != 2 {
		t.Errorf("CompletedTasks = %d, want 2", s.CompletedTasks)
	}
}

func TestCompute_CategoryOrderWithZeroes(t *testing.T) {
	notes := []note.Note{
		{ID: "a", Date: "2026-08-27", Category: note.CategoryFood},
		{ID: "b", Date: "2026-08-27", Category: note.CategoryFood},
		{ID: "c", Date: "2026-08-27", Category: note.CategoryWork},
	}

	s, err := Compute(notes, fixedNow)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	defs := note.Categories()
	if len(s.Categories) != len(defs) {
		t.Fatalf("Categories has %d entries, want %d (zero counts included)", len(s.Categories), len(defs))
	}

	sum := 0
	for i, cc := range s.Categories {
		if cc.ID != defs[i].ID {
			t.Errorf("Categories[%d].ID = %q, want %q (definition order)", i, cc.ID, defs[i].ID)
		}
		sum += cc.Count
	}
	if sum != s.TotalNotes {
		t.Errorf("category counts sum to %d, want %d", sum, s.TotalNotes)
	}
	if s.Categories[1].Count != 0 {
		t.Errorf("personal count = %d, want 0", s.Categories[1].Count)
	}
}

func TestCompute_WeekWindowBoundaries(t *testing.T) {
	// The window is inclusive on both ends over calendar dates, regardless
	// of the time of day now carries.
	weekAgo := fixedNow.AddDate(0, 0, -7).Format(note.DateLayout)
	dayBefore := fixedNow.AddDate(0, 0, -8).Format(note.DateLayout)
	today := fixedNow.Format(note.DateLayout)

	notes := []note.Note{
		{ID: "edge-old", Date: weekAgo, Category: note.CategoryWork},
		{ID: "edge-new", Date: today, Category: note.CategoryWork},
		{ID: "outside", Date: dayBefore, Category: note.CategoryWork},
	}

	s, err := Compute(notes, fixedNow)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if s.ThisWeek != 2 {
		t.Errorf("ThisWeek = %d, want 2 (both boundary dates count, the day before does not)", s.ThisWeek)
	}
}

func TestCompute_UnparseableDateFails(t *testing.T) {
	notes := []note.Note{
		{ID: "bad", Date: "08/27/2026", Category: note.CategoryWork},
	}

	_, err := Compute(notes, fixedNow)
	if err == nil {
		t.Fatal("expected error for unparseable date")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error %q should name the offending note", err)
	}
}

func TestCompute_EmptyCollection(t *testing.T) {
	s, err := Compute(nil, fixedNow)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if s.TotalNotes != 0 || s.ThisWeek != 0 || s.CompletedTasks != 0 {
		t.Errorf("empty summary = %+v", s)
	}
	if len(s.Categories) != len(note.Categories()) {
		t.Error("empty collection still lists every category with zero counts")
	}
}
