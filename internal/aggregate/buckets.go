package aggregate

import "notecal/internal/note"

// MaxBucketCategories caps the distinct category markers shown on a calendar
// cell. When a day holds notes beyond the cap, the renderer adds one generic
// "more" marker; the bucket exposes the raw count so it need not recount.
const MaxBucketCategories = 3

// DayBucket summarizes the notes attached to one calendar date.
type DayBucket struct {
	// Count is the total number of notes on the day
	Count int `json:"count"`

	// Categories holds up to MaxBucketCategories distinct categories in
	// collection order
	Categories []note.Category `json:"categories,omitempty"`
}

// BucketByDay partitions a collection by exact date, keyed by YYYY-MM-DD.
// Days with no notes have no entry.
func BucketByDay(notes []note.Note) map[string]DayBucket {
	buckets := make(map[string]DayBucket)
	for _, n := range notes {
		b := buckets[n.Date]
		b.Count++
		if len(b.Categories) < MaxBucketCategories && !containsCategory(b.Categories, n.Category) {
			b.Categories = append(b.Categories, n.Category)
		}
		buckets[n.Date] = b
	}
	return buckets
}

func containsCategory(cats []note.Category, c note.Category) bool {
	for _, existing := range cats {
		if existing == c {
			return true
		}
	}
	return false
}
