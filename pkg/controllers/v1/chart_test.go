package v1_test

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/finance-tracker/backend/internal/types"
	v1 "github.com/finance-tracker/backend/pkg/controllers/v1"
	"github.com/finance-tracker/backend/pkg/charts"
	"github.com/finance-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func (suite *TestSuiteStandard) TestChartsRender() {
	demo := seedDemo(suite.T())

	for _, path := range []string{"/charts/spending-by-category.png", "/charts/summary.png"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1"+path, "", demo)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			assert.Equal(t, "image/png", r.Header().Get("Content-Type"))
			assert.True(t, bytes.HasPrefix(r.Body.Bytes(), pngMagic), "response is not a PNG image")
		})
	}
}

// TestChartsNoData verifies that charts without data to show are not found.
func (suite *TestSuiteStandard) TestChartsNoData() {
	for _, path := range []string{"/charts/spending-by-category.png", "/charts/summary.png"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1"+path, "", authHeaders)
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
			assert.Contains(t, r.Body.String(), charts.ErrNoData.Error())
		})
	}
}

// TestChartsIncomeOnly verifies that the breakdown chart needs expenses
// while the summary chart does not.
func (suite *TestSuiteStandard) TestChartsIncomeOnly() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Allowance", Kind: "income"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: c.Data.ID, Amount: decimal.NewFromInt(20), Date: types.DateOf(time.Now())})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts/spending-by-category.png", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts/summary.png", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.True(suite.T(), bytes.HasPrefix(r.Body.Bytes(), pngMagic), "response is not a PNG image")
}

func (suite *TestSuiteStandard) TestChartsOptions() {
	for _, path := range []string{"/charts/spending-by-category.png", "/charts/summary.png"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1"+path, "", authHeaders)
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}
