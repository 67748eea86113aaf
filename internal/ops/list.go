package ops

import (
	"database/sql"

	"notecal/internal/aggregate"
	"notecal/internal/config"
	"notecal/internal/db"
	"notecal/internal/note"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Search   string // substring match on title or content
	Category string // exact category id
	Date     string // exact calendar date (YYYY-MM-DD)
	Compact  bool   // use the shorter preview length
}

// ListItem is a note decorated with its plain-text content preview.
type ListItem struct {
	note.Note
	Preview string `json:"preview"`
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items []ListItem `json:"items"`
	Total int        `json:"total"`
	Sort  string     `json:"sort"`
}

// List returns the notes matching the filter, pinned first and most recently
// updated first within equal pinned status. Search is pushed down to the
// store; category and date narrowing plus sorting run in the aggregator.
func List(database *sql.DB, cfg *config.Config, input ListInput) (*ListOutput, error) {
	f, err := buildFilter(input.Search, input.Category, input.Date)
	if err != nil {
		return nil, err
	}

	var notes []note.Note
	if f.Search != "" {
		notes, err = db.Search(database, f.Search)
		// The store already applied the search; don't match twice.
		f.Search = ""
	} else {
		notes, err = db.ListAll(database)
	}
	if err != nil {
		return nil, err
	}

	matched := aggregate.Apply(notes, f)

	previewLen := cfg.PreviewMaxChars
	if input.Compact {
		previewLen = cfg.PreviewCompactChars
	}

	items := make([]ListItem, 0, len(matched))
	for _, n := range matched {
		items = append(items, ListItem{
			Note:    n,
			Preview: note.Preview(n.Content, previewLen),
		})
	}

	return &ListOutput{
		Items: items,
		Total: len(items),
		Sort:  SortOrder,
	}, nil
}
