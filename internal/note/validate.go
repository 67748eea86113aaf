package note

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate validates a calendar-date string in YYYY-MM-DD form and returns
// it anchored at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// NormalizeTags lowercases, trims, and deduplicates tags while preserving
// insertion order. Empty entries are dropped.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// Validate checks the field constraints from the data model: non-empty title
// and content, a parseable date, a recognized category, deduplicated tags,
// and ordered timestamps. The engine assumes validated notes; this runs at
// the editing and storage boundaries.
func Validate(n *Note) error {
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(n.Content) == "" {
		return fmt.Errorf("content is required")
	}
	if _, err := ParseDate(n.Date); err != nil {
		return err
	}
	if !n.Category.Valid() {
		return fmt.Errorf("unknown category %q", n.Category)
	}
	seen := make(map[string]bool, len(n.Tags))
	for _, tag := range n.Tags {
		lower := strings.ToLower(tag)
		if seen[lower] {
			return fmt.Errorf("duplicate tag %q", tag)
		}
		seen[lower] = true
	}
	if n.CreatedAt <= 0 || n.UpdatedAt <= 0 {
		return fmt.Errorf("timestamps must be positive")
	}
	if n.UpdatedAt < n.CreatedAt {
		return fmt.Errorf("updated_at %d precedes created_at %d", n.UpdatedAt, n.CreatedAt)
	}
	return nil
}
