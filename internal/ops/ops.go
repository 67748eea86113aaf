// Package ops implements the operations consumed by the CLI, MCP, and web
// surfaces. Each operation validates its input, talks to the store, and runs
// the pure aggregation/statistics engine over the resulting snapshot.
package ops

import (
	"strings"

	"notecal/internal/aggregate"
	"notecal/internal/errors"
	"notecal/internal/note"
)

// SortOrder is the ordering applied to list results.
const SortOrder = "pinned_updated_at_desc"

// buildFilter validates external filter parameters and converts them to an
// aggregate.Filter. An unrecognized category is rejected rather than being
// silently matched against nothing.
func buildFilter(search, category, date string) (aggregate.Filter, error) {
	f := aggregate.Filter{Search: strings.TrimSpace(search)}

	if category != "" {
		c, err := note.ParseCategory(category)
		if err != nil {
			return f, errors.NewInvalidRequest(err.Error())
		}
		f.Category = c
	}

	if date != "" {
		if _, err := note.ParseDate(date); err != nil {
			return f, errors.NewInvalidRequest(err.Error())
		}
		f.Date = date
	}

	return f, nil
}
