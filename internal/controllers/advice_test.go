package controllers_test

import (
	"net/http"

	"github.com/finsight/backend/internal/controllers"
	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetAdvice() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/advice", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.AdviceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().GreaterOrEqual(response.Data.MSE, 0.0)
	suite.Assert().NotEmpty(response.Data.SampleInput)
}

func (suite *TestSuiteStandard) TestGetAdviceDeterministic() {
	first := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/advice?seed=7", "", authHeader())
	second := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/advice?seed=7", "", authHeader())

	test.AssertHTTPStatus(suite.T(), http.StatusOK, &first)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &second)

	suite.Assert().Equal(first.Body.String(), second.Body.String())
}

func (suite *TestSuiteStandard) TestGetAdviceInvalidSeed() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/advice?seed=nope", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetAdviceInsufficientData() {
	router := suite.routerFor(ledger.NewStore(nil))

	recorder := test.Request(suite.T(), router, http.MethodGet, "/v1/advice", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}
