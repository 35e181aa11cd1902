package models

import (
	"context"
	"time"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/finance-tracker/backend/pkg/query"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store reads the records that the reports are computed from.
type Store struct {
	DB *gorm.DB
}

// entryRow is a transaction joined with its category. All category
// columns are NULL when the category does not exist.
type entryRow struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	Description     string
	Date            types.Date
	CreatedAt       time.Time
	CategoryRefID   uuid.UUID
	CategoryOwnerID uuid.UUID
	CategoryName    *string
	CategoryKind    *string
	CategoryColor   *string
}

func (r entryRow) entry() ledger.Entry {
	e := ledger.Entry{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		CategoryID:  r.CategoryID,
		Amount:      r.Amount,
		Description: r.Description,
		Date:        r.Date,
		CreatedAt:   r.CreatedAt.In(time.UTC),
		Category: ledger.CategoryRef{
			ID:      r.CategoryRefID,
			OwnerID: r.CategoryOwnerID,
		},
	}

	if r.CategoryName != nil {
		e.Category.Name = *r.CategoryName
	}

	if r.CategoryKind != nil {
		e.Category.Kind = ledger.Kind(*r.CategoryKind)
	}

	if r.CategoryColor != nil {
		e.Category.Color = *r.CategoryColor
	}

	return e
}

const entryColumns = "transactions.id, transactions.owner_id, transactions.category_id, transactions.amount, " +
	"transactions.description, transactions.date, transactions.created_at, " +
	"categories.id AS category_ref_id, categories.owner_id AS category_owner_id, " +
	"categories.name AS category_name, categories.kind AS category_kind, categories.color AS category_color"

// Entries returns the transactions selected by the filter together with
// their category, newest first.
func (s Store) Entries(ctx context.Context, f query.Filter) ([]ledger.Entry, error) {
	var rows []entryRow

	err := s.DB.WithContext(ctx).
		Table("transactions").
		Select(entryColumns).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Scopes(f.Scope).
		Order("transactions.date DESC, transactions.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]ledger.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.entry())
	}

	return entries, nil
}

// Goals returns all savings goals of the owner, newest first.
func (s Store) Goals(ctx context.Context, ownerID uuid.UUID) ([]SavingsGoal, error) {
	var goals []SavingsGoal

	err := s.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}

	return goals, nil
}
