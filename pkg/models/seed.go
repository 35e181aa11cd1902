package models

import (
	"errors"
	"fmt"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Credentials of the demo user.
const (
	DemoUsername = "demo"
	DemoPassword = "demo123"
	DemoEmail    = "demo@example.com"
)

func demoCategories() []Category {
	categories := make([]Category, 0, len(DefaultCategories)+2)
	categories = append(categories, DefaultCategories...)

	return append(categories,
		Category{Name: "Utilities", Kind: ledger.KindExpense, Color: "#06b6d4"},
		Category{Name: "Healthcare", Kind: ledger.KindExpense, Color: "#ec4899"},
	)
}

var demoTransactions = []struct {
	category    string
	amount      int64
	description string
}{
	{"Salary", 3000, "Monthly Salary"},
	{"Groceries", 150, "Weekly groceries"},
	{"Transportation", 50, "Gas"},
}

// SeedDemo creates the demo user with sample categories, transactions
// dated today and a savings goal.
//
// If the demo user already exists, it is returned unchanged.
func SeedDemo(db *gorm.DB, today types.Date) (User, error) {
	var existing User
	err := db.Where("username = ?", DemoUsername).First(&existing).Error
	if err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrResourceNotFound) {
		return User{}, err
	}

	var user User
	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = createUser(tx, DemoUsername, DemoPassword, DemoEmail, demoCategories())
		if err != nil {
			return err
		}

		var categories []Category
		err = tx.Where("owner_id = ?", user.ID).Find(&categories).Error
		if err != nil {
			return err
		}

		// Transactions reference the categories by the IDs they were created with
		ids := make(map[string]uuid.UUID, len(categories))
		for _, c := range categories {
			ids[c.Name] = c.ID
		}

		for _, d := range demoTransactions {
			categoryID, ok := ids[d.category]
			if !ok {
				return fmt.Errorf("demo category %s was not created", d.category)
			}

			t := Transaction{
				OwnerID:     user.ID,
				CategoryID:  categoryID,
				Amount:      decimal.NewFromInt(d.amount),
				Description: d.description,
				Date:        today,
			}

			if err := t.Validate(tx); err != nil {
				return err
			}

			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}

		goal := SavingsGoal{
			OwnerID:       user.ID,
			Name:          "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(10000),
			CurrentAmount: decimal.NewFromInt(2500),
			Deadline:      today.AddDate(1, 0, 0),
		}

		return tx.Create(&goal).Error
	})
	if err != nil {
		return User{}, err
	}

	log.Info().Str("username", user.Username).Msg("created demo user")
	return user, nil
}
