package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// GoalProgress is the progress towards a savings goal.
//
// Percent is the raw ratio and exceeds 100 when more than the target has
// been saved. PercentCapped never exceeds 100 and is meant for progress bars.
type GoalProgress struct {
	Percent       decimal.Decimal `json:"percent" example:"150"`       // Uncapped percentage of the target saved
	PercentCapped decimal.Decimal `json:"percentCapped" example:"100"` // Percentage capped at 100 for display
	Remaining     decimal.Decimal `json:"remaining" example:"0"`       // Amount still missing, never negative
}

// Progress calculates how far the current amount is towards the target.
func Progress(target, current decimal.Decimal) (GoalProgress, error) {
	if !target.IsPositive() {
		return GoalProgress{}, fmt.Errorf("%w: the target amount must be larger than zero, got %s", ErrInvalidGoal, target)
	}

	if current.IsNegative() {
		return GoalProgress{}, fmt.Errorf("%w: the current amount must not be negative, got %s", ErrInvalidGoal, current)
	}

	percent := current.Div(target).Mul(hundred)

	return GoalProgress{
		Percent:       percent,
		PercentCapped: decimal.Min(percent, hundred),
		Remaining:     decimal.Max(target.Sub(current), decimal.Zero),
	}, nil
}

// Round rounds all values to the given number of decimal places.
func (p GoalProgress) Round(places int32) GoalProgress {
	return GoalProgress{
		Percent:       p.Percent.Round(places),
		PercentCapped: p.PercentCapped.Round(places),
		Remaining:     p.Remaining.Round(places),
	}
}
