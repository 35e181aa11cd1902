// Package ledger reduces a snapshot of one user's transactions into
// summaries, category breakdowns, rollups and savings goal progress.
//
// All functions are pure. They never mutate their input and perform no I/O,
// the caller fetches the data before invoking them.
package ledger

import (
	"fmt"
	"time"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the income/expense classification of a category.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether the kind is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// CategoryRef is the category metadata joined onto a transaction.
type CategoryRef struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Kind    Kind
	Color   string
}

// Entry is a transaction enriched with its category.
type Entry struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal // always positive, the sign comes from Category.Kind
	Description string
	Date        types.Date
	CreatedAt   time.Time
	Category    CategoryRef
}

// check verifies that the entry references an existing category
// of the same owner with a known kind.
func (e Entry) check() error {
	if e.Category.ID == uuid.Nil || e.Category.ID != e.CategoryID {
		return fmt.Errorf("%w: transaction %s references category %s, which does not exist", ErrReferentialIntegrity, e.ID, e.CategoryID)
	}

	if e.Category.OwnerID != e.OwnerID {
		return fmt.Errorf("%w: category %s of transaction %s belongs to a different user", ErrReferentialIntegrity, e.Category.ID, e.ID)
	}

	if !e.Category.Kind.Valid() {
		return fmt.Errorf("%w: category %s of transaction %s has unknown kind %q", ErrReferentialIntegrity, e.Category.ID, e.ID, e.Category.Kind)
	}

	return nil
}

func checkAll(entries []Entry) error {
	for _, e := range entries {
		if err := e.check(); err != nil {
			return err
		}
	}
	return nil
}
