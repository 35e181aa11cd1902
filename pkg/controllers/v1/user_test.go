package v1_test

import (
	"net/http"

	v1 "github.com/finance-tracker/backend/pkg/controllers/v1"
	"github.com/finance-tracker/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMe() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/me", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), testUsername, response.Data.Username)
	assert.Equal(suite.T(), "alice@example.com", response.Data.Email)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/me", "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), otherUsername, response.Data.Username)
	assert.Equal(suite.T(), "", response.Data.Email)
}

func (suite *TestSuiteStandard) TestMeOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/me", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMeDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/me", "", authHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
