// Package query validates and normalizes the date range and ownership
// constraints that select the transactions of a report.
package query

import (
	"fmt"
	"time"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/finance-tracker/backend/pkg/ledger"
)

// DateRange is an inclusive range of calendar dates.
//
// A zero Start or End means that the bound is absent.
type DateRange struct {
	Start types.Date
	End   types.Date
}

// ParseDateRange parses the start and end date of a range.
//
// An empty string leaves the bound absent. Each present bound must be
// formatted as YYYY-MM-DD and start must not be after end.
func ParseDateRange(start, end string) (DateRange, error) {
	var r DateRange

	if start != "" {
		d, err := types.ParseDate(start)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: the start date %q is not formatted as YYYY-MM-DD", ledger.ErrInvalidDateRange, start)
		}
		r.Start = d
	}

	if end != "" {
		d, err := types.ParseDate(end)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: the end date %q is not formatted as YYYY-MM-DD", ledger.ErrInvalidDateRange, end)
		}
		r.End = d
	}

	if !r.Start.IsZero() && !r.End.IsZero() && r.Start.After(r.End) {
		return DateRange{}, fmt.Errorf("%w: the start date %s is after the end date %s", ledger.ErrInvalidDateRange, r.Start, r.End)
	}

	return r, nil
}

// Trailing returns the range [today - days, today], where today
// is the calendar date of now.
func Trailing(now time.Time, days int) DateRange {
	today := types.DateOf(now)

	return DateRange{
		Start: today.AddDays(-days),
		End:   today,
	}
}

// IsAllTime reports whether both bounds are absent.
func (r DateRange) IsAllTime() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether the date is within the range.
func (r DateRange) Contains(d types.Date) bool {
	if !r.Start.IsZero() && d.Before(r.Start) {
		return false
	}

	if !r.End.IsZero() && d.After(r.End) {
		return false
	}

	return true
}
