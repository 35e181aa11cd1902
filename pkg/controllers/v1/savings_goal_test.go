package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/finance-tracker/backend/internal/types"
	v1 "github.com/finance-tracker/backend/pkg/controllers/v1"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/finance-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestSavingsGoalsDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestSavingsGoalsDatabaseError() {
	tests := []struct {
		name   string // Name of the test
		path   string // Path to send request to
		method string // HTTP method to use
	}{
		{"GET Collection", "", http.MethodGet},
		{"POST Collection", "", http.MethodPost},
		{"GET Progress", "/progress", http.MethodGet},
		{"OPTIONS Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodOptions},
		{"GET Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodGet},
		{"PATCH Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodPatch},
		{"DELETE Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodDelete},
		{"POST Contribution", fmt.Sprintf("/%s/contributions", uuid.New().String()), http.MethodPost},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/savings-goals%s", tt.path), "", authHeaders)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}

// TestSavingsGoalsOptions verifies that the HTTP OPTIONS response for the
// savings goal endpoints is correct.
func (suite *TestSuiteStandard) TestSavingsGoalsOptions() {
	tests := []struct {
		name     string                    // Name for the test
		status   int                       // Expected HTTP status
		allow    string                    // Expected value of the allow header
		path     string                    // Path to use. Ignored when pathFunc is non-nil
		pathFunc func(t *testing.T) string // Function returning the path
	}{
		{"Collection", http.StatusNoContent, "OPTIONS, GET, POST", "", nil},
		{"Progress", http.StatusNoContent, "OPTIONS, GET", "/progress", nil},
		{"Does not exist", http.StatusNotFound, "", fmt.Sprintf("/%s", uuid.New()), nil},
		{"Invalid UUID", http.StatusBadRequest, "", "/NotParseableAsUUID", nil},
		{"Contributions of missing goal", http.StatusNotFound, "", fmt.Sprintf("/%s/contributions", uuid.New()), nil},
		{
			"Single",
			http.StatusNoContent,
			"OPTIONS, GET, PATCH, DELETE",
			"",
			func(t *testing.T) string {
				return createTestSavingsGoal(t, v1.SavingsGoalEditable{}).Data.Links.Self
			},
		},
		{
			"Contributions",
			http.StatusNoContent,
			"OPTIONS, POST",
			"",
			func(t *testing.T) string {
				return createTestSavingsGoal(t, v1.SavingsGoalEditable{}).Data.Links.Contributions
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc(t)
			} else {
				p = fmt.Sprintf("%s%s", "http://example.com/v1/savings-goals", tt.path)
			}

			r := test.Request(t, http.MethodOptions, p, "", authHeaders)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsGoalsCreate() {
	tests := []struct {
		name           string
		create         []v1.SavingsGoalEditable
		expectedErrors []string
		expectedStatus int
	}{
		{
			"All successful",
			[]v1.SavingsGoalEditable{
				{Name: "Vacation", TargetAmount: decimal.NewFromInt(3000), Deadline: types.NewDate(2025, 7, 1)},
				{Name: "Laptop", TargetAmount: decimal.NewFromInt(1500), CurrentAmount: decimal.NewFromInt(2000)},
			},
			[]string{"", ""},
			http.StatusCreated,
		},
		{
			"Empty name",
			[]v1.SavingsGoalEditable{
				{Name: " ", TargetAmount: decimal.NewFromInt(100)},
			},
			[]string{models.ErrGoalNameEmpty.Error()},
			http.StatusBadRequest,
		},
		{
			"Zero target",
			[]v1.SavingsGoalEditable{
				{Name: "Nothing"},
			},
			[]string{fmt.Sprintf("%s: the target amount must be larger than zero", ledger.ErrInvalidGoal)},
			http.StatusBadRequest,
		},
		{
			"Negative current amount",
			[]v1.SavingsGoalEditable{
				{Name: "Debt", TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(-1)},
			},
			[]string{fmt.Sprintf("%s: the current amount must not be negative", ledger.ErrInvalidGoal)},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/savings-goals", tt.create, authHeaders)
			test.AssertHTTPStatus(t, &r, tt.expectedStatus)

			var gr v1.SavingsGoalCreateResponse
			test.DecodeResponse(t, &r, &gr)

			for i, r := range gr.Data {
				if tt.expectedErrors[i] != "" {
					assert.Equal(t, tt.expectedErrors[i], *r.Error)
				} else {
					assert.Equal(t, fmt.Sprintf("http://example.com/v1/savings-goals/%s", r.Data.ID), r.Data.Links.Self)
					assert.Equal(t, fmt.Sprintf("http://example.com/v1/savings-goals/%s/contributions", r.Data.ID), r.Data.Links.Contributions)
				}
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsGoalsProgress() {
	tests := []struct {
		name      string
		target    string
		current   string
		percent   string
		capped    string
		remaining string
	}{
		{"Nothing saved", "1000", "0", "0", "0", "1000"},
		{"Quarter", "10000", "2500", "25", "25", "7500"},
		{"Reached", "500", "500", "100", "100", "0"},
		{"Exceeded", "1000", "1500", "150", "100", "0"},
		{"Rounded", "3", "1", "33.33", "33.33", "2"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			g := createTestSavingsGoal(t, v1.SavingsGoalEditable{
				TargetAmount:  decimal.RequireFromString(tt.target),
				CurrentAmount: decimal.RequireFromString(tt.current),
			})

			assertDecimal(t, tt.percent, g.Data.Progress.Percent)
			assertDecimal(t, tt.capped, g.Data.Progress.PercentCapped)
			assertDecimal(t, tt.remaining, g.Data.Progress.Remaining)
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsGoalsGet() {
	first := createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{Name: "First"})
	second := createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{Name: "Second", Deadline: types.NewDate(2030, 1, 1)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings-goals", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsGoalListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Newest first
	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), second.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), first.Data.ID, response.Data[1].ID)
	assert.Equal(suite.T(), types.NewDate(2030, 1, 1), response.Data[0].Deadline)
	assert.True(suite.T(), response.Data[1].Deadline.IsZero())

	r = test.Request(suite.T(), http.MethodGet, first.Data.Links.Self, "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var single v1.SavingsGoalResponse
	test.DecodeResponse(suite.T(), &r, &single)
	assert.Equal(suite.T(), "First", single.Data.Name)
}

func (suite *TestSuiteStandard) TestSavingsGoalsGetProgress() {
	_ = createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{Name: "House", TargetAmount: decimal.NewFromInt(50000), CurrentAmount: decimal.NewFromInt(5000)})
	_ = createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{Name: "Bike", TargetAmount: decimal.NewFromInt(800), CurrentAmount: decimal.NewFromInt(1000)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings-goals/progress", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalProgressListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), "Bike", response.Data[0].Name)
	assertDecimal(suite.T(), "125", response.Data[0].Percent)
	assertDecimal(suite.T(), "100", response.Data[0].PercentCapped)
	assertDecimal(suite.T(), "0", response.Data[0].Remaining)

	assert.Equal(suite.T(), "House", response.Data[1].Name)
	assertDecimal(suite.T(), "10", response.Data[1].Percent)
	assertDecimal(suite.T(), "45000", response.Data[1].Remaining)

	// Other users do not see the goals
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings-goals/progress", "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestSavingsGoalsUpdate() {
	g := createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{
		Name:         "Car",
		TargetAmount: decimal.NewFromInt(20000),
		Deadline:     types.NewDate(2026, 6, 30),
	})

	tests := []struct {
		name   string
		body   any
		status int
		check  func(t *testing.T, g v1.SavingsGoal)
	}{
		{
			"Name",
			map[string]any{"name": "Electric car"},
			http.StatusOK,
			func(t *testing.T, g v1.SavingsGoal) {
				assert.Equal(t, "Electric car", g.Name)
				assertDecimal(t, "20000", g.TargetAmount)
			},
		},
		{
			"Current amount",
			map[string]any{"currentAmount": 5000},
			http.StatusOK,
			func(t *testing.T, g v1.SavingsGoal) {
				assertDecimal(t, "5000", g.CurrentAmount)
				assertDecimal(t, "25", g.Progress.Percent)
			},
		},
		{
			"Remove deadline",
			map[string]any{"deadline": nil},
			http.StatusOK,
			func(t *testing.T, g v1.SavingsGoal) {
				assert.True(t, g.Deadline.IsZero())
			},
		},
		{"Zero target", map[string]any{"targetAmount": 0}, http.StatusBadRequest, nil},
		{"Negative current amount", map[string]any{"currentAmount": -10}, http.StatusBadRequest, nil},
		{"Empty name", map[string]any{"name": ""}, http.StatusBadRequest, nil},
		{"Broken body", `{ "name": 42 }`, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, g.Data.Links.Self, tt.body, authHeaders)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.SavingsGoalResponse
			test.DecodeResponse(t, &r, &response)

			if tt.check != nil {
				tt.check(t, *response.Data)
			}
		})
	}

	// Failed updates are rolled back
	r := test.Request(suite.T(), http.MethodGet, g.Data.Links.Self, "", authHeaders)
	var response v1.SavingsGoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Electric car", response.Data.Name)
	assertDecimal(suite.T(), "20000", response.Data.TargetAmount)
	assertDecimal(suite.T(), "5000", response.Data.CurrentAmount)
}

func (suite *TestSuiteStandard) TestSavingsGoalsContribution() {
	g := createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(900)})

	tests := []struct {
		name    string
		body    any
		status  int
		current string
	}{
		{"Contribution", v1.Contribution{Amount: decimal.RequireFromString("50.25")}, http.StatusOK, "950.25"},
		{"Exceeds target", v1.Contribution{Amount: decimal.NewFromInt(100)}, http.StatusOK, "1050.25"},
		{"Zero", v1.Contribution{Amount: decimal.Zero}, http.StatusBadRequest, "1050.25"},
		{"Negative", v1.Contribution{Amount: decimal.NewFromInt(-20)}, http.StatusBadRequest, "1050.25"},
		{"Broken body", `{ "amount": "all of it" }`, http.StatusBadRequest, "1050.25"},
		{"Empty body", "", http.StatusBadRequest, "1050.25"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, g.Data.Links.Contributions, tt.body, authHeaders)
			test.AssertHTTPStatus(t, &r, tt.status)

			r = test.Request(t, http.MethodGet, g.Data.Links.Self, "", authHeaders)
			var response v1.SavingsGoalResponse
			test.DecodeResponse(t, &r, &response)
			assertDecimal(t, tt.current, response.Data.CurrentAmount)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, g.Data.Links.Self, "", authHeaders)
	var response v1.SavingsGoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assertDecimal(suite.T(), "105.03", response.Data.Progress.Percent)
	assertDecimal(suite.T(), "100", response.Data.Progress.PercentCapped)
	assertDecimal(suite.T(), "0", response.Data.Progress.Remaining)
}

func (suite *TestSuiteStandard) TestSavingsGoalsContributionMissingGoal() {
	body := v1.Contribution{Amount: decimal.NewFromInt(10)}

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/savings-goals/%s/contributions", uuid.New()), body, authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings-goals/invalid/contributions", body, authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestSavingsGoalsOwnerScoping verifies that goals of other users can
// neither be read nor modified.
func (suite *TestSuiteStandard) TestSavingsGoalsOwnerScoping() {
	g := createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{Name: "Private"})

	for _, method := range []string{http.MethodOptions, http.MethodGet, http.MethodPatch, http.MethodDelete} {
		suite.T().Run(method, func(t *testing.T) {
			r := test.Request(t, method, g.Data.Links.Self, `{ "name": "Stolen" }`, otherHeaders)
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, g.Data.Links.Contributions, `{ "amount": 10 }`, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings-goals", "", otherHeaders)
	var response v1.SavingsGoalListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}

// TestSavingsGoalsStoredInvalid verifies that a stored goal without a
// positive target is reported instead of being shown without progress.
func (suite *TestSuiteStandard) TestSavingsGoalsStoredInvalid() {
	var alice models.User
	suite.Require().Nil(models.DB.Where("username = ?", testUsername).First(&alice).Error)

	// Written without validation, the API never creates such a goal
	goal := models.SavingsGoal{OwnerID: alice.ID, Name: "Broken", TargetAmount: decimal.Zero}
	suite.Require().Nil(models.DB.Create(&goal).Error)

	urls := []string{
		fmt.Sprintf("http://example.com/v1/savings-goals/%s", goal.ID),
		"http://example.com/v1/savings-goals",
		"http://example.com/v1/savings-goals/progress",
	}

	for _, url := range urls {
		suite.T().Run(url, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, url, "", authHeaders)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, r.Body.String(), ledger.ErrInvalidGoal.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsGoalsDelete() {
	g := createTestSavingsGoal(suite.T(), v1.SavingsGoalEditable{})

	r := test.Request(suite.T(), http.MethodDelete, g.Data.Links.Self, "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, g.Data.Links.Self, "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/savings-goals/nope", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
