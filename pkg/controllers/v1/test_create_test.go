package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/finance-tracker/backend/pkg/controllers/v1"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/finance-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func createTestCategory(t *testing.T, category v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if category.Name == "" {
		category.Name = uuid.New().String()
	}

	if category.Kind == "" {
		category.Kind = ledger.KindExpense
	}

	body := []v1.CategoryEditable{
		category,
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", body, authHeaders)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var c v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &c)

	if r.Code == http.StatusCreated {
		return c.Data[0]
	}

	return v1.CategoryResponse{}
}

func createTestTransaction(t *testing.T, transaction v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if transaction.CategoryID == uuid.Nil {
		transaction.CategoryID = createTestCategory(t, v1.CategoryEditable{}).Data.ID
	}

	if transaction.Amount.IsZero() {
		transaction.Amount = decimal.NewFromFloat(10.5)
	}

	body := []v1.TransactionEditable{
		transaction,
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", body, authHeaders)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var c v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &c)

	if r.Code == http.StatusCreated {
		return c.Data[0]
	}

	return v1.TransactionResponse{}
}

func createTestSavingsGoal(t *testing.T, goal v1.SavingsGoalEditable, expectedStatus ...int) v1.SavingsGoalResponse {
	if goal.Name == "" {
		goal.Name = uuid.New().String()
	}

	if goal.TargetAmount.IsZero() {
		goal.TargetAmount = decimal.NewFromInt(1000)
	}

	body := []v1.SavingsGoalEditable{
		goal,
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/savings-goals", body, authHeaders)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var c v1.SavingsGoalCreateResponse
	test.DecodeResponse(t, &r, &c)

	if r.Code == http.StatusCreated {
		return c.Data[0]
	}

	return v1.SavingsGoalResponse{}
}
