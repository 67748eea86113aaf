package ops

import (
	"crypto/rand"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"notecal/internal/db"
	"notecal/internal/errors"
	"notecal/internal/note"
)

// CreateInput contains parameters for the Create operation.
type CreateInput struct {
	Title     string
	Content   string
	Date      string // YYYY-MM-DD; defaults to today when empty
	Category  string
	Tags      []string
	Checklist []note.ChecklistItem
	Pinned    bool
}

// CreateOutput contains the result of the Create operation.
type CreateOutput struct {
	Note note.Note `json:"note"`
}

// Create validates and stores a new note. The store assigns the id and sets
// created_at = updated_at = now.
func Create(database *sql.DB, input CreateInput) (*CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.NewInvalidRequest("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.NewInvalidRequest("content is required")
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = time.Now().UTC().Format(note.DateLayout)
	}

	category, err := note.ParseCategory(input.Category)
	if err != nil {
		return nil, errors.NewInvalidRequest(err.Error())
	}

	id, err := generateULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	now := time.Now().Unix()

	n := &note.Note{
		ID:        id,
		Title:     input.Title,
		Content:   input.Content,
		Date:      date,
		Category:  category,
		Tags:      note.NormalizeTags(input.Tags),
		Checklist: withChecklistIDs(input.Checklist),
		Pinned:    input.Pinned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := note.Validate(n); err != nil {
		return nil, errors.NewInvalidNote(err)
	}

	if err := db.Insert(database, n); err != nil {
		return nil, err
	}

	return &CreateOutput{Note: *n}, nil
}

// generateULID creates a new ULID for a note id.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// withChecklistIDs returns a copy of the checklist with a UUID assigned to
// any item that arrived without one. Empty item text is dropped.
func withChecklistIDs(items []note.ChecklistItem) []note.ChecklistItem {
	if len(items) == 0 {
		return nil
	}
	result := make([]note.ChecklistItem, 0, len(items))
	for _, item := range items {
		item.Text = strings.TrimSpace(item.Text)
		if item.Text == "" {
			continue
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		result = append(result, item)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
