package query

import (
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter selects the transactions of one owner within a date range.
type Filter struct {
	OwnerID uuid.UUID
	Range   DateRange
}

// Matches reports whether the entry is selected by the filter.
func (f Filter) Matches(e ledger.Entry) bool {
	return e.OwnerID == f.OwnerID && f.Range.Contains(e.Date)
}

// Scope applies the filter to a query on the transactions table.
//
// Use it with gorm's Scopes method.
func (f Filter) Scope(db *gorm.DB) *gorm.DB {
	db = db.Where("transactions.owner_id = ?", f.OwnerID)

	if !f.Range.Start.IsZero() {
		db = db.Where("transactions.date >= ?", f.Range.Start)
	}

	if !f.Range.End.IsZero() {
		db = db.Where("transactions.date <= ?", f.Range.End)
	}

	return db
}
