package controllers_test

import (
	"net/http"

	"github.com/finsight/backend/internal/router"
	"github.com/finsight/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response router.RootResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Contains(response.Links.V1, "/v1")
	suite.Assert().Contains(response.Links.Healthz, "/healthz")
}

func (suite *TestSuiteStandard) TestGetVersion() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/version", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response router.VersionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().NotEmpty(response.Data.Version)
}

func (suite *TestSuiteStandard) TestGetHealthz() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
}

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response router.V1Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Contains(response.Links.Expenses, "/v1/expenses")
	suite.Assert().Contains(response.Links.Advice, "/v1/advice")
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/", "GET"},
		{"/version", "GET"},
		{"/healthz", "GET"},
		{"/v1/expenses", "GET"},
		{"/v1/budget", "GET, POST"},
		{"/v1/budget/categories", "GET, POST"},
		{"/v1/insights", "GET"},
		{"/v1/advice", "GET"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodOptions, tt.path, "", authHeader())
		test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
		suite.Assert().Equal(tt.allow, recorder.Header().Get("allow"), tt.path)
	}
}

func (suite *TestSuiteStandard) TestAuthRequired() {
	paths := []string{"/v1", "/v1/expenses", "/v1/budget", "/v1/insights", "/v1/advice"}

	for _, path := range paths {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
	}
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, "/v1/expenses", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusMethodNotAllowed, &recorder)
}
