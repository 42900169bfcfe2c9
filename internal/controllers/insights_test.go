package controllers_test

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/controllers"
	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetInsights() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/insights", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.InsightsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.TotalIncome.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(response.Data.TotalExpenses.Equal(decimal.NewFromInt(150)))
	suite.Assert().True(response.Data.Savings.Equal(decimal.NewFromInt(850)))

	suite.Require().Len(response.Data.ByKind, 2)
	suite.Assert().True(response.Data.ByKind[ledger.Income].Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(response.Data.ByKind[ledger.Expense].Equal(decimal.NewFromInt(150)))

	suite.Assert().True(strings.HasPrefix(response.Data.Chart, "data:image/png;base64,"))
}

func (suite *TestSuiteStandard) TestGetInsightsEmptyLedger() {
	router := suite.routerFor(ledger.NewStore(nil))

	recorder := test.Request(suite.T(), router, http.MethodGet, "/v1/insights", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.InsightsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.Savings.IsZero())
	suite.Assert().Empty(response.Data.Chart)
}
