package ledger

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CategoryTotal is the sum of all expenses in one category.
type CategoryTotal struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"5ab6d2c4-0fd2-4c4e-9a4e-2c1c1d0f0e0a"` // ID of the category
	Name       string          `json:"name" example:"Groceries"`                                  // Name of the category
	Color      string          `json:"color" example:"#ef4444"`                                   // Display color of the category
	Total      decimal.Decimal `json:"total" example:"150"`                                       // Sum of all expenses in the category
}

// BreakdownByCategory groups the expense entries by category.
//
// Income entries are never part of the breakdown. The result is ordered by
// total descending, equal totals by category ID ascending. Categories without
// entries are omitted.
func BreakdownByCategory(entries []Entry) ([]CategoryTotal, error) {
	if err := checkAll(entries); err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]*CategoryTotal)
	for _, e := range entries {
		if e.Category.Kind != KindExpense {
			continue
		}

		t, ok := totals[e.Category.ID]
		if !ok {
			t = &CategoryTotal{
				CategoryID: e.Category.ID,
				Name:       e.Category.Name,
				Color:      e.Category.Color,
				Total:      decimal.Zero,
			}
			totals[e.Category.ID] = t
		}
		t.Total = t.Total.Add(e.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for _, t := range totals {
		breakdown = append(breakdown, *t)
	}

	slices.SortFunc(breakdown, func(a, b CategoryTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.CategoryID.String(), b.CategoryID.String())
	})

	return breakdown, nil
}

// RoundBreakdown rounds all totals to the given number of decimal places.
func RoundBreakdown(breakdown []CategoryTotal, places int32) []CategoryTotal {
	rounded := make([]CategoryTotal, 0, len(breakdown))
	for _, t := range breakdown {
		t.Total = t.Total.Round(places)
		rounded = append(rounded, t)
	}
	return rounded
}
