package ledger

import "github.com/shopspring/decimal"

// Summary is the income, expense and balance over a set of transactions.
type Summary struct {
	Income  decimal.Decimal `json:"income" example:"3000"`  // Sum of all income transactions
	Expense decimal.Decimal `json:"expense" example:"200"`  // Sum of all expense transactions
	Balance decimal.Decimal `json:"balance" example:"2800"` // Income minus expense
}

// Summarize sums up income and expense of the entries.
//
// An empty slice yields all zeros.
func Summarize(entries []Entry) (Summary, error) {
	if err := checkAll(entries); err != nil {
		return Summary{}, err
	}

	return summarize(entries), nil
}

func summarize(entries []Entry) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, e := range entries {
		switch e.Category.Kind {
		case KindIncome:
			income = income.Add(e.Amount)
		case KindExpense:
			expense = expense.Add(e.Amount)
		}
	}

	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// Round rounds all values to the given number of decimal places.
func (s Summary) Round(places int32) Summary {
	return Summary{
		Income:  s.Income.Round(places),
		Expense: s.Expense.Round(places),
		Balance: s.Balance.Round(places),
	}
}
