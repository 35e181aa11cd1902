package models_test

import (
	"errors"
	"testing"
	"time"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionValidate() {
	own := suite.createTestCategory(models.Category{})
	foreign := suite.createTestCategory(models.Category{})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Valid", models.Transaction{OwnerID: own.OwnerID, CategoryID: own.ID, Amount: decimal.NewFromFloat(12.5)}, nil},
		{"Zero amount", models.Transaction{OwnerID: own.OwnerID, CategoryID: own.ID}, models.ErrTransactionAmountNotPositive},
		{"Negative amount", models.Transaction{OwnerID: own.OwnerID, CategoryID: own.ID, Amount: decimal.NewFromInt(-5)}, models.ErrTransactionAmountNotPositive},
		{"No category", models.Transaction{OwnerID: own.OwnerID, Amount: decimal.NewFromInt(5)}, models.ErrTransactionCategoryInvalid},
		{"Missing category", models.Transaction{OwnerID: own.OwnerID, CategoryID: uuid.New(), Amount: decimal.NewFromInt(5)}, models.ErrTransactionCategoryInvalid},
		{"Category of other user", models.Transaction{OwnerID: own.OwnerID, CategoryID: foreign.ID, Amount: decimal.NewFromInt(5)}, models.ErrTransactionCategoryInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate(models.DB)
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionDefaults() {
	before := types.DateOf(time.Now())
	transaction := suite.createTestTransaction(models.Transaction{Description: "  Coffee "})

	suite.Assert().Equal("Coffee", transaction.Description)

	var stored models.Transaction
	suite.Require().Nil(models.DB.First(&stored, transaction.ID).Error)
	suite.Assert().True(stored.Date.Between(before, types.DateOf(time.Now())), "date is %s", stored.Date)
	suite.Assert().True(stored.Amount.Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestTransactionDateRoundTrip() {
	transaction := suite.createTestTransaction(models.Transaction{Date: types.NewDate(2024, 2, 29)})

	var stored models.Transaction
	suite.Require().Nil(models.DB.First(&stored, transaction.ID).Error)
	suite.Assert().Equal(types.NewDate(2024, 2, 29), stored.Date)
}

func (suite *TestSuiteStandard) TestDeleteCategoryCascades() {
	c := suite.createTestCategory(models.Category{})
	transaction := suite.createTestTransaction(models.Transaction{OwnerID: c.OwnerID, CategoryID: c.ID})

	suite.Require().Nil(models.DB.Delete(&c).Error)

	err := models.DB.First(&models.Transaction{}, transaction.ID).Error
	suite.Assert().True(errors.Is(err, models.ErrResourceNotFound), "got %v", err)
}
