package ops

import (
	"database/sql"
	"strings"

	"notecal/internal/db"
	"notecal/internal/errors"
	"notecal/internal/note"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	ID string
}

// FetchOutput contains the result of the Fetch operation.
type FetchOutput struct {
	Note note.Note `json:"note"`
}

// Fetch retrieves a note by id.
func Fetch(database *sql.DB, input FetchInput) (*FetchOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	n, err := db.GetByID(database, id)
	if err != nil {
		return nil, err
	}

	return &FetchOutput{Note: *n}, nil
}
