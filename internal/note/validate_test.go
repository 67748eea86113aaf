package note

import (
	"strings"
	"testing"
	"time"
)

func validNote() Note {
	now := time.Now().Unix()
	return Note{
		ID:        "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Title:     "Weekly planning",
		Content:   "Review sprint goals.",
		Date:      "2026-03-14",
		Category:  CategoryWork,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-02-28")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.February || got.Day() != 28 {
		t.Errorf("ParseDate = %v", got)
	}

	for _, bad := range []string{"", "2026-2-28", "28/02/2026", "2026-13-01", "not a date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Alpha", "beta", "ALPHA", "", "  ", "beta", "gamma"})
	want := []string{"alpha", "beta", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeTags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizeTags[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if NormalizeTags(nil) != nil {
		t.Error("NormalizeTags(nil) should be nil")
	}
	if NormalizeTags([]string{"  ", ""}) != nil {
		t.Error("NormalizeTags of only blanks should be nil")
	}
}

func TestValidate(t *testing.T) {
	n := validNote()
	if err := Validate(&n); err != nil {
		t.Fatalf("valid note rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Note)
		want   string
	}{
		{"empty title", func(n *Note) { n.Title = "  " }, "title"},
		{"empty content", func(n *Note) { n.Content = "" }, "content"},
		{"bad date", func(n *Note) { n.Date = "03/14/2026" }, "date"},
		{"bad category", func(n *Note) { n.Category = "misc" }, "category"},
		{"duplicate tags", func(n *Note) { n.Tags = []string{"go", "Go"} }, "duplicate tag"},
		{"zero timestamps", func(n *Note) { n.CreatedAt = 0 }, "timestamps"},
		{"inverted timestamps", func(n *Note) { n.UpdatedAt = n.CreatedAt - 10 }, "precedes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := validNote()
			tt.mutate(&n)
			err := Validate(&n)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCompletedTasks(t *testing.T) {
	n := validNote()
	if n.CompletedTasks() != 0 {
		t.Error("note without checklist should report 0 completed tasks")
	}

	n.Checklist = []ChecklistItem{
		{ID: "a", Text: "one", Completed: true},
		{ID: "b", Text: "two"},
		{ID: "c", Text: "three", Completed: true},
	}
	if got := n.CompletedTasks(); got != 2 {
		t.Errorf("CompletedTasks = %d, want 2", got)
	}
}

func TestClone_DeepCopiesSlices(t *testing.T) {
	n := validNote()
	n.Tags = []string{"go"}
	n.Checklist = []ChecklistItem{{ID: "a", Text: "one"}}

	c := n.Clone()
	c.Tags[0] = "rust"
	c.Checklist[0].Completed = true

	if n.Tags[0] != "go" {
		t.Error("Clone shares the tags backing array")
	}
	if n.Checklist[0].Completed {
		t.Error("Clone shares the checklist backing array")
	}
}
