package ledger

import (
	"time"

	"github.com/finance-tracker/backend/internal/types"
)

// WeeklyWindowDays is the length of the trailing window of WeeklyRollup.
const WeeklyWindowDays = 7

// Rollup is a Summary over a time window together with the
// number of transactions in it.
type Rollup struct {
	Summary
	Count int `json:"count" example:"3"` // Number of transactions in the window
}

// WeeklyRollup summarizes the entries dated in the trailing seven days
// [today - 7 days, today], both ends inclusive, where today is the
// calendar date of now.
//
// The window is applied regardless of any filtering the entries have
// already gone through.
func WeeklyRollup(entries []Entry, now time.Time) (Rollup, error) {
	if err := checkAll(entries); err != nil {
		return Rollup{}, err
	}

	until := types.DateOf(now)
	from := until.AddDays(-WeeklyWindowDays)

	window := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date.Between(from, until) {
			window = append(window, e)
		}
	}

	return Rollup{
		Summary: summarize(window),
		Count:   len(window),
	}, nil
}

// Round rounds all values to the given number of decimal places.
func (r Rollup) Round(places int32) Rollup {
	return Rollup{
		Summary: r.Summary.Round(places),
		Count:   r.Count,
	}
}
