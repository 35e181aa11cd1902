package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/finance-tracker/backend/pkg/controllers/v1"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/finance-tracker/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestCategoriesDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestCategoriesDatabaseError() {
	tests := []struct {
		name   string // Name of the test
		path   string // Path to send request to
		method string // HTTP method to use
	}{
		{"GET Collection", "", http.MethodGet},
		{"POST Collection", "", http.MethodPost},
		{"OPTIONS Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodOptions},
		{"GET Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodGet},
		{"PATCH Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodPatch},
		{"DELETE Single", fmt.Sprintf("/%s", uuid.New().String()), http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/categories%s", tt.path), "", authHeaders)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}

// TestCategoriesOptions verifies that the HTTP OPTIONS response for /v1/categories/{id} is correct.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name     string                    // Name for the test
		status   int                       // Expected HTTP status
		id       string                    // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func(t *testing.T) string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func(t *testing.T) string {
				return createTestCategory(t, v1.CategoryEditable{}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc(t)
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/categories", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "", authHeaders)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesOptionsList() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	tests := []struct {
		name           string
		create         []v1.CategoryEditable
		expectedErrors []string
		expectedStatus int
	}{
		{
			"All successful",
			[]v1.CategoryEditable{
				{Name: "Rent", Kind: ledger.KindExpense, Color: "#123456"},
				{Name: "Dividends", Kind: ledger.KindIncome},
			},
			[]string{"", ""},
			http.StatusCreated,
		},
		{
			"Second fails",
			[]v1.CategoryEditable{
				{Name: "Books", Kind: ledger.KindExpense},
				{Name: "Gifts", Kind: "donation"},
			},
			[]string{"", models.ErrCategoryKindInvalid.Error()},
			http.StatusBadRequest,
		},
		{
			"Duplicate name",
			[]v1.CategoryEditable{
				{Name: "Groceries", Kind: ledger.KindExpense},
			},
			[]string{models.ErrCategoryNameNotUnique.Error()},
			http.StatusBadRequest,
		},
		{
			"Invalid color and empty name",
			[]v1.CategoryEditable{
				{Name: "Hobbies", Kind: ledger.KindExpense, Color: "red"},
				{Name: "   ", Kind: ledger.KindExpense},
			},
			[]string{models.ErrCategoryColorInvalid.Error(), models.ErrCategoryNameEmpty.Error()},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.create, authHeaders)
			test.AssertHTTPStatus(t, &r, tt.expectedStatus)

			var cr v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &cr)

			for i, r := range cr.Data {
				if tt.expectedErrors[i] != "" {
					assert.Equal(t, tt.expectedErrors[i], *r.Error)
				} else {
					assert.Equal(t, fmt.Sprintf("http://example.com/v1/categories/%s", r.Data.ID), r.Data.Links.Self)
					assert.Equal(t, fmt.Sprintf("http://example.com/v1/transactions?category=%s", r.Data.ID), r.Data.Links.Transactions)
				}
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateDefaultColor() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "  Pets  "})
	assert.Equal(suite.T(), "Pets", c.Data.Name)
	assert.Equal(suite.T(), models.DefaultCategoryColor, c.Data.Color)
}

func (suite *TestSuiteStandard) TestCategoriesCreateBrokenBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", `[{ "name": 2 }]`, authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Every user starts with the default categories, ordered by name
	names := make([]string, 0, len(response.Data))
	for _, c := range response.Data {
		names = append(names, c.Name)
	}
	assert.Equal(suite.T(), []string{"Entertainment", "Groceries", "Salary", "Transportation"}, names)
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	tests := []struct {
		name   string
		query  string
		len    int
		status int
	}{
		{"Income", "kind=income", 1, http.StatusOK},
		{"Expense", "kind=expense", 3, http.StatusOK},
		{"No filter", "", 4, http.StatusOK},
		{"Invalid kind", "kind=transfer", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "", authHeaders)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestCategoriesOwnerScoping verifies that categories of other users
// can neither be read nor modified.
func (suite *TestSuiteStandard) TestCategoriesOwnerScoping() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Private"})

	for _, method := range []string{http.MethodOptions, http.MethodGet, http.MethodPatch, http.MethodDelete} {
		suite.T().Run(method, func(t *testing.T) {
			r := test.Request(t, method, c.Data.Links.Self, `{ "name": "Stolen" }`, otherHeaders)
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "", otherHeaders)
	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, len(models.DefaultCategories))

	// The category is unchanged
	r = test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var category v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &category)
	assert.Equal(suite.T(), "Private", category.Data.Name)
}

// TestCategoriesSameNameOtherUser verifies that names only need to be
// unique per user.
func (suite *TestSuiteStandard) TestCategoriesSameNameOtherUser() {
	body := []v1.CategoryEditable{{Name: "Shared", Kind: ledger.KindExpense}}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", body, authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", body, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Single", Color: "#abcdef"})

	r := test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), c.Data.ID, response.Data.ID)
	assert.Equal(suite.T(), "#abcdef", response.Data.Color)
	assert.Equal(suite.T(), ledger.KindExpense, response.Data.Kind)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/not-a-uuid", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", uuid.New()), "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var notFound v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &notFound)
	assert.True(suite.T(), strings.HasPrefix(*notFound.Error, models.ErrResourceNotFound.Error()))
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Original", Color: "#111111"})

	tests := []struct {
		name   string
		body   any
		status int
		check  func(t *testing.T, c v1.Category)
	}{
		{
			"Name only",
			map[string]any{"name": "Renamed"},
			http.StatusOK,
			func(t *testing.T, c v1.Category) {
				assert.Equal(t, "Renamed", c.Name)
				assert.Equal(t, "#111111", c.Color)
			},
		},
		{
			"Kind without transactions",
			map[string]any{"kind": "income"},
			http.StatusOK,
			func(t *testing.T, c v1.Category) {
				assert.Equal(t, ledger.KindIncome, c.Kind)
			},
		},
		{"Invalid kind", map[string]any{"kind": "refund"}, http.StatusBadRequest, nil},
		{"Invalid color", map[string]any{"color": "#12"}, http.StatusBadRequest, nil},
		{"Empty name", map[string]any{"name": ""}, http.StatusBadRequest, nil},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, nil},
		{"Duplicate name", map[string]any{"name": "Groceries"}, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, c.Data.Links.Self, tt.body, authHeaders)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryResponse
			test.DecodeResponse(t, &r, &response)

			if tt.check != nil {
				tt.check(t, *response.Data)
			}
		})
	}

	// Failed updates are rolled back
	r := test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "", authHeaders)
	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Renamed", response.Data.Name)
	assert.Equal(suite.T(), ledger.KindIncome, response.Data.Kind)
	assert.Equal(suite.T(), "#111111", response.Data.Color)
}

// TestCategoriesUpdateKindReferenced verifies that the kind of a category
// cannot change once transactions reference it.
func (suite *TestSuiteStandard) TestCategoriesUpdateKindReferenced() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Freelancing", Kind: ledger.KindIncome})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: c.Data.ID, Amount: decimal.NewFromInt(500)})

	r := test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{"kind": "expense"}, authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrCategoryKindImmutable.Error(), *response.Error)

	// The same kind and other fields can still be updated
	r = test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{"kind": "income", "name": "Consulting"}, authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Consulting", response.Data.Name)
}

// TestCategoriesDeleteCascade verifies that deleting a category deletes
// its transactions.
func (suite *TestSuiteStandard) TestCategoriesDeleteCascade() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Temporary"})
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: c.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, c.Data.Links.Self, "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, tr.Data.Links.Self, "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesDeleteInvalid() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/categories/-1", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", uuid.New()), "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
