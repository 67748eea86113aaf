package note

// DateLayout is the calendar-date format used throughout the application.
// Note dates carry no time component.
const DateLayout = "2006-01-02"

// Note represents a single user-authored record attached to a calendar date.
type Note struct {
	// ID is a ULID that uniquely identifies this note
	ID string `json:"id"`

	// Title is the short heading shown on cards and in the activity feed
	Title string `json:"title"`

	// Content is the note body; lightweight markdown is allowed
	Content string `json:"content"`

	// Date is the calendar date (YYYY-MM-DD) the note is attached to.
	// It need not equal the creation date.
	Date string `json:"date"`

	// Category is one of the five closed category values
	Category Category `json:"category"`

	// Tags is a set of lowercase strings, insertion order preserved
	Tags []string `json:"tags,omitempty"`

	// Checklist is an optional ordered task list; empty means no checklist
	Checklist []ChecklistItem `json:"checklist,omitempty"`

	// Pinned notes sort ahead of unpinned notes regardless of recency
	Pinned bool `json:"pinned"`

	// CreatedAt is the Unix timestamp when the note was created
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the Unix timestamp of the last edit.
	// UpdatedAt == CreatedAt signals the note was never edited.
	UpdatedAt int64 `json:"updated_at"`
}

// ChecklistItem is a single entry in a note's checklist.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// CompletedTasks returns the number of completed checklist items.
func (n *Note) CompletedTasks() int {
	count := 0
	for _, item := range n.Checklist {
		if item.Completed {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the note. Slices are copied so callers can
// derive views without sharing backing arrays with the snapshot.
func (n Note) Clone() Note {
	c := n
	if n.Tags != nil {
		c.Tags = append([]string(nil), n.Tags...)
	}
	if n.Checklist != nil {
		c.Checklist = append([]ChecklistItem(nil), n.Checklist...)
	}
	return c
}
