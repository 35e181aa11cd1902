package v1

import (
	"github.com/finance-tracker/backend/pkg/query"
	"github.com/google/uuid"
)

// QueryDateRange is the date range of a report.
type QueryDateRange struct {
	StartDate string `form:"startDate" example:"2024-01-01"` // First date to include, YYYY-MM-DD
	EndDate   string `form:"endDate" example:"2024-01-31"`   // Last date to include, YYYY-MM-DD
}

// filter parses the range and returns the filter for the owner.
func (q QueryDateRange) filter(ownerID uuid.UUID) (query.Filter, error) {
	r, err := query.ParseDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return query.Filter{}, err
	}

	return query.Filter{OwnerID: ownerID, Range: r}, nil
}
