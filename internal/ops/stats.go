package ops

import (
	"database/sql"
	"time"

	"notecal/internal/db"
	"notecal/internal/errors"
	"notecal/internal/stats"
)

// StatsOutput contains the result of the Stats operation.
type StatsOutput struct {
	stats.Summary
	Activity []stats.Activity `json:"activity"`
}

// Stats computes the sidebar summary and recent-activity feed over the full
// collection. Results are point-in-time: the this-week window and relative
// times are anchored to the wall clock at the moment of the call.
func Stats(database *sql.DB) (*StatsOutput, error) {
	notes, err := db.ListAll(database)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	summary, err := stats.Compute(notes, now)
	if err != nil {
		return nil, errors.NewInvalidNote(err)
	}

	activity, err := stats.RecentActivity(notes, now)
	if err != nil {
		return nil, errors.NewInvalidNote(err)
	}

	return &StatsOutput{
		Summary:  *summary,
		Activity: activity,
	}, nil
}
