package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single income or expense. Whether it is one or the other
// is defined by the kind of its category.
type Transaction struct {
	DefaultModel
	Owner       User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	OwnerID     uuid.UUID `gorm:"index"`
	Category    Category  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CategoryID  uuid.UUID
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Always positive
	Description string
	Date        types.Date `gorm:"index"`
}

// BeforeSave trims the description and defaults the date to today.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = types.DateOf(time.Now())
	}

	return nil
}

// Validate checks that the amount is positive and that the category
// exists and belongs to the owner of the transaction.
func (t Transaction) Validate(db *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if t.CategoryID == uuid.Nil {
		return ErrTransactionCategoryInvalid
	}

	var category Category
	err := db.Where("id = ? AND owner_id = ?", t.CategoryID, t.OwnerID).First(&category).Error
	if errors.Is(err, ErrResourceNotFound) {
		return fmt.Errorf("%w: %s", ErrTransactionCategoryInvalid, t.CategoryID)
	} else if err != nil {
		return err
	}

	return nil
}
