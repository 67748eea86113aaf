package db

import (
	"database/sql"
	"testing"
	"time"

	"notecal/internal/errors"
	"notecal/internal/note"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func testNote(id, title string) *note.Note {
	now := time.Now().Unix()
	return &note.Note{
		ID:        id,
		Title:     title,
		Content:   "content of " + title,
		Date:      "2026-08-27",
		Category:  note.CategoryWork,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestInsertAndGetByID_RoundTrip(t *testing.T) {
	database := testDB(t)

	n := testNote("01A", "Roundtrip")
	n.Tags = []string{"go", "sqlite"}
	n.Checklist = []note.ChecklistItem{
		{ID: "i1", Text: "write", Completed: true},
		{ID: "i2", Text: "review"},
	}
	n.Pinned = true

	if err := Insert(database, n); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := GetByID(database, "01A")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != n.Title || got.Content != n.Content || got.Date != n.Date {
		t.Errorf("got %+v", got)
	}
	if got.Category != note.CategoryWork || !got.Pinned {
		t.Errorf("category/pinned lost: %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[1] != "sqlite" {
		t.Errorf("Tags = %v", got.Tags)
	}
	if len(got.Checklist) != 2 || !got.Checklist[0].Completed || got.Checklist[1].Text != "review" {
		t.Errorf("Checklist = %v", got.Checklist)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	database := testDB(t)

	_, err := GetByID(database, "missing")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestListAll_OrderedByUpdatedDesc(t *testing.T) {
	database := testDB(t)

	old := testNote("01A", "Old")
	old.CreatedAt, old.UpdatedAt = 100, 100
	recent := testNote("01B", "Recent")
	recent.CreatedAt, recent.UpdatedAt = 200, 200

	for _, n := range []*note.Note{old, recent} {
		if err := Insert(database, n); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	notes, err := ListAll(database)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(notes) != 2 || notes[0].ID != "01B" || notes[1].ID != "01A" {
		t.Errorf("order = %v", notes)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	database := testDB(t)

	a := testNote("01A", "Grocery List")
	b := testNote("01B", "Standup")
	b.Content = "Talk about GROCERIES budget"
	c := testNote("01C", "Unrelated")

	for _, n := range []*note.Note{a, b, c} {
		if err := Insert(database, n); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := Search(database, "grocer")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Search matched %d notes, want 2 (title and content)", len(got))
	}
}

func TestSearch_EscapesWildcards(t *testing.T) {
	database := testDB(t)

	literal := testNote("01A", "Progress at 100%")
	other := testNote("01B", "Progress at 100x")

	for _, n := range []*note.Note{literal, other} {
		if err := Insert(database, n); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := Search(database, "100%")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "01A" {
		t.Errorf("%% should match literally, got %v", got)
	}

	got, err = Search(database, "100_")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("_ should match literally, got %v", got)
	}
}

func TestUpdateByID(t *testing.T) {
	database := testDB(t)

	n := testNote("01A", "Before")
	n.CreatedAt, n.UpdatedAt = 100, 100
	if err := Insert(database, n); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	n.Title = "After"
	n.Pinned = true
	if err := UpdateByID(database, n); err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}
	if n.UpdatedAt == 100 {
		t.Error("UpdateByID should refresh updated_at on the struct")
	}

	got, err := GetByID(database, "01A")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "After" || !got.Pinned {
		t.Errorf("got %+v", got)
	}
	if got.CreatedAt != 100 {
		t.Errorf("created_at changed to %d", got.CreatedAt)
	}
	if got.UpdatedAt <= 100 {
		t.Errorf("updated_at = %d, want refreshed", got.UpdatedAt)
	}
}

func TestUpdateByID_NotFound(t *testing.T) {
	database := testDB(t)

	n := testNote("missing", "Ghost")
	if err := UpdateByID(database, n); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestDelete(t *testing.T) {
	database := testDB(t)

	n := testNote("01A", "Doomed")
	if err := Insert(database, n); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := Delete(database, "01A"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := GetByID(database, "01A"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("deleted note still fetchable: %v", err)
	}
	if err := Delete(database, "01A"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("second delete err = %v, want NOT_FOUND", err)
	}
}

func TestEmptySlicesStoredAsNull(t *testing.T) {
	database := testDB(t)

	n := testNote("01A", "Bare")
	if err := Insert(database, n); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	var tags, checklist sql.NullString
	err := database.QueryRow(`SELECT tags_json, checklist_json FROM notes WHERE id = ?`, "01A").Scan(&tags, &checklist)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if tags.Valid || checklist.Valid {
		t.Errorf("empty slices should store NULL, got %v %v", tags, checklist)
	}

	got, err := GetByID(database, "01A")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Tags != nil || got.Checklist != nil {
		t.Errorf("NULL columns should scan to nil slices, got %+v", got)
	}
}
