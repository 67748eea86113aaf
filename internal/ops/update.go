package ops

import (
	"database/sql"
	"strings"

	"notecal/internal/db"
	"notecal/internal/errors"
	"notecal/internal/note"
)

// UpdateInput contains parameters for the Update operation.
// Editable fields are pointers; nil means "don't change".
type UpdateInput struct {
	ID string

	Title     *string
	Content   *string
	Date      *string
	Category  *string
	Tags      *[]string
	Checklist *[]note.ChecklistItem
	Pinned    *bool
}

// UpdateOutput contains the result of the Update operation.
type UpdateOutput struct {
	Note note.Note `json:"note"`
}

// Update modifies an existing note. The store bumps updated_at; created_at
// never changes, so an edited note no longer reports equal timestamps.
func Update(database *sql.DB, input UpdateInput) (*UpdateOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	if input.Title == nil && input.Content == nil && input.Date == nil &&
		input.Category == nil && input.Tags == nil && input.Checklist == nil &&
		input.Pinned == nil {
		return nil, errors.NewInvalidRequest("at least one editable field must be provided")
	}

	n, err := db.GetByID(database, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		n.Title = *input.Title
	}
	if input.Content != nil {
		n.Content = *input.Content
	}
	if input.Date != nil {
		n.Date = strings.TrimSpace(*input.Date)
	}
	if input.Category != nil {
		category, err := note.ParseCategory(*input.Category)
		if err != nil {
			return nil, errors.NewInvalidRequest(err.Error())
		}
		n.Category = category
	}
	if input.Tags != nil {
		n.Tags = note.NormalizeTags(*input.Tags)
	}
	if input.Checklist != nil {
		n.Checklist = withChecklistIDs(*input.Checklist)
	}
	if input.Pinned != nil {
		n.Pinned = *input.Pinned
	}

	if err := note.Validate(n); err != nil {
		return nil, errors.NewInvalidNote(err)
	}

	if err := db.UpdateByID(database, n); err != nil {
		return nil, err
	}

	return &UpdateOutput{Note: *n}, nil
}
