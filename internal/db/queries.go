package db

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"notecal/internal/errors"
	"notecal/internal/note"
)

const noteColumns = `id, title, content, date, category, tags_json, checklist_json, pinned, created_at, updated_at`

// Insert stores a new note in the database.
func Insert(db *sql.DB, n *note.Note) error {
	tagsJSON, checklistJSON, err := encodeJSONFields(n)
	if err != nil {
		return errors.NewInternal(err)
	}

	query := `
		INSERT INTO notes (` + noteColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.Exec(query,
		n.ID, n.Title, n.Content, n.Date, string(n.Category),
		tagsJSON, checklistJSON, boolToInt(n.Pinned), n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// GetByID retrieves a note by its ULID.
func GetByID(db *sql.DB, id string) (*note.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = ?`

	n, err := scanNote(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return n, nil
}

// ListAll returns every note, most recently updated first. The aggregator
// re-sorts for the pinned-first view; this order only has to be stable.
func ListAll(db *sql.DB) ([]note.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes ORDER BY updated_at DESC, id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return collectNotes(rows)
}

// Search returns notes whose title or content contains the query text,
// case-insensitively, most recently updated first. Matches the aggregator's
// in-memory search semantics.
func Search(db *sql.DB, text string) ([]note.Note, error) {
	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"
	query := `
		SELECT ` + noteColumns + ` FROM notes
		WHERE lower(title) LIKE ? ESCAPE '\' OR lower(content) LIKE ? ESCAPE '\'
		ORDER BY updated_at DESC, id
	`

	rows, err := db.Query(query, pattern, pattern)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return collectNotes(rows)
}

// UpdateByID rewrites the mutable fields of an existing note and sets
// updated_at to the current time. The id and created_at never change.
func UpdateByID(db *sql.DB, n *note.Note) error {
	tagsJSON, checklistJSON, err := encodeJSONFields(n)
	if err != nil {
		return errors.NewInternal(err)
	}

	now := time.Now().Unix()

	query := `
		UPDATE notes
		SET title = ?, content = ?, date = ?, category = ?,
			tags_json = ?, checklist_json = ?, pinned = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := db.Exec(query,
		n.Title, n.Content, n.Date, string(n.Category),
		tagsJSON, checklistJSON, boolToInt(n.Pinned), now,
		n.ID,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(n.ID)
	}

	// Reflect the server-side timestamp back into the struct
	n.UpdatedAt = now

	return nil
}

// Delete removes a note permanently.
func Delete(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(id)
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanNote.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote scans a single row into a Note struct.
func scanNote(row rowScanner) (*note.Note, error) {
	var (
		n             note.Note
		category      string
		tagsJSON      sql.NullString
		checklistJSON sql.NullString
		pinned        int
	)

	err := row.Scan(
		&n.ID, &n.Title, &n.Content, &n.Date, &category,
		&tagsJSON, &checklistJSON, &pinned, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	n.Category = note.Category(category)
	n.Pinned = pinned != 0

	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &n.Tags); err != nil {
			return nil, err
		}
	}
	if checklistJSON.Valid && checklistJSON.String != "" {
		if err := json.Unmarshal([]byte(checklistJSON.String), &n.Checklist); err != nil {
			return nil, err
		}
	}

	return &n, nil
}

// collectNotes drains a result set into a slice.
func collectNotes(rows *sql.Rows) ([]note.Note, error) {
	notes := make([]note.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return notes, nil
}

// encodeJSONFields marshals tags and checklist to their JSON columns.
// Empty slices are stored as NULL.
func encodeJSONFields(n *note.Note) (sql.NullString, sql.NullString, error) {
	var tagsJSON, checklistJSON sql.NullString

	if len(n.Tags) > 0 {
		data, err := json.Marshal(n.Tags)
		if err != nil {
			return tagsJSON, checklistJSON, err
		}
		tagsJSON = sql.NullString{String: string(data), Valid: true}
	}

	if len(n.Checklist) > 0 {
		data, err := json.Marshal(n.Checklist)
		if err != nil {
			return tagsJSON, checklistJSON, err
		}
		checklistJSON = sql.NullString{String: string(data), Valid: true}
	}

	return tagsJSON, checklistJSON, nil
}

// escapeLike escapes LIKE wildcards in user-supplied search text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
