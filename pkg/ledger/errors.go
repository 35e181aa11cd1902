package ledger

import "errors"

// Error kinds surfaced by the aggregation engine and the filter layer.
// Match them with errors.Is, details are wrapped around them.
var (
	ErrInvalidDateRange     = errors.New("the date range is invalid")
	ErrInvalidGoal          = errors.New("the savings goal is invalid")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
)
