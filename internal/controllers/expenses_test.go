package controllers_test

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/controllers"
	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetExpenses() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/expenses", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.ExpensesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Summary, 1)
	suite.Assert().True(response.Data.Summary["Food"].Equal(decimal.NewFromInt(150)))
	suite.Assert().True(strings.HasPrefix(response.Data.Chart, "data:image/png;base64,"))
}

func (suite *TestSuiteStandard) TestGetExpensesEmptyLedger() {
	router := suite.routerFor(ledger.NewStore(nil))

	recorder := test.Request(suite.T(), router, http.MethodGet, "/v1/expenses", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.ExpensesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Empty(response.Data.Summary)
	suite.Assert().Empty(response.Data.Chart)
}
