package ledger_test

import (
	"time"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var owner = uuid.MustParse("11111111-1111-4111-8111-111111111111")

var (
	salary    = category("00000000-0000-4000-8000-00000000000a", "Salary", ledger.KindIncome)
	groceries = category("00000000-0000-4000-8000-00000000000b", "Groceries", ledger.KindExpense)
	transport = category("00000000-0000-4000-8000-00000000000c", "Transportation", ledger.KindExpense)
	fun       = category("00000000-0000-4000-8000-00000000000d", "Entertainment", ledger.KindExpense)
)

func category(id, name string, kind ledger.Kind) ledger.CategoryRef {
	return ledger.CategoryRef{
		ID:      uuid.MustParse(id),
		OwnerID: owner,
		Name:    name,
		Kind:    kind,
		Color:   "#3b82f6",
	}
}

func entry(c ledger.CategoryRef, amount string, date types.Date) ledger.Entry {
	return ledger.Entry{
		ID:         uuid.New(),
		OwnerID:    owner,
		CategoryID: c.ID,
		Amount:     decimal.RequireFromString(amount),
		Date:       date,
		CreatedAt:  time.Now(),
		Category:   c,
	}
}
