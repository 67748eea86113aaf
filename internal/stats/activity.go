package stats

import (
	"fmt"
	"sort"
	"time"

	"notecal/internal/note"
)

// ActivityFeedSize is the number of entries in the recent-activity feed.
const ActivityFeedSize = 5

// Activity action labels. Priority when deriving: Created beats
// CompletedChecklist beats Updated.
const (
	ActionCreated            = "Created"
	ActionCompletedChecklist = "Completed checklist"
	ActionUpdated            = "Updated"
)

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Action string `json:"action"`
	Time   string `json:"time"`
	Color  string `json:"color"`
}

// RecentActivity returns the ActivityFeedSize most recently updated notes as
// feed entries. The action label is "Created" when the note was never edited
// (created_at equals updated_at exactly), otherwise "Completed checklist"
// when any checklist item is completed, otherwise "Updated". Invalid
// timestamps fail the computation explicitly.
func RecentActivity(notes []note.Note, now time.Time) ([]Activity, error) {
	// Pinned status is irrelevant here: the feed orders purely by recency.
	sorted := make([]note.Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt > sorted[j].UpdatedAt
	})

	limit := min(len(sorted), ActivityFeedSize)
	feed := make([]Activity, 0, limit)

	for _, n := range sorted[:limit] {
		if n.UpdatedAt <= 0 || n.CreatedAt <= 0 {
			return nil, fmt.Errorf("note %s: timestamps must be positive", n.ID)
		}
		if n.UpdatedAt < n.CreatedAt {
			return nil, fmt.Errorf("note %s: updated_at %d precedes created_at %d", n.ID, n.UpdatedAt, n.CreatedAt)
		}

		action := ActionUpdated
		switch {
		case n.CreatedAt == n.UpdatedAt:
			action = ActionCreated
		case n.CompletedTasks() > 0:
			action = ActionCompletedChecklist
		}

		color := note.DefaultActivityColor
		if def, ok := note.LookupCategory(n.Category); ok {
			color = def.Color
		}

		feed = append(feed, Activity{
			ID:     n.ID,
			Title:  n.Title,
			Action: action,
			Time:   TimeAgo(now, n.UpdatedAt),
			Color:  color,
		})
	}

	return feed, nil
}

// TimeAgo formats the distance between now and a Unix timestamp as a coarse
// relative string: seconds under a minute, then floored minutes, hours, and
// days. There is deliberately no weeks/months tier; very old notes render as
// large day counts.
func TimeAgo(now time.Time, unix int64) string {
	diff := now.Unix() - unix
	if diff < 0 {
		diff = 0
	}
	switch {
	case diff < 60:
		return fmt.Sprintf("%ds ago", diff)
	case diff < 3600:
		return fmt.Sprintf("%dm ago", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%dh ago", diff/3600)
	default:
		return fmt.Sprintf("%dd ago", diff/86400)
	}
}
