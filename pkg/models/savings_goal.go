package models

import (
	"fmt"
	"strings"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal is an amount a user wants to save up to, optionally by a deadline.
type SavingsGoal struct {
	DefaultModel
	Owner         User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	OwnerID       uuid.UUID `gorm:"index"`
	Name          string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Can exceed the target
	Deadline      types.Date      // Zero when the goal has no deadline
}

func (g *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)

	return nil
}

// Validate checks the savings goal for invalid values.
func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrGoalNameEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return fmt.Errorf("%w: the target amount must be larger than zero", ledger.ErrInvalidGoal)
	}

	if g.CurrentAmount.IsNegative() {
		return fmt.Errorf("%w: the current amount must not be negative", ledger.ErrInvalidGoal)
	}

	return nil
}

// Progress returns the progress towards the target amount.
func (g SavingsGoal) Progress() (ledger.GoalProgress, error) {
	return ledger.Progress(g.TargetAmount, g.CurrentAmount)
}
