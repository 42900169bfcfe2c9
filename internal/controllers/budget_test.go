package controllers_test

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/controllers"
	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/test"
	"github.com/finsight/backend/internal/types"
)

// marchStore returns a ledger with a single expense total in March 2023.
func marchStore(total int64) *ledger.Store {
	march := time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)

	return ledger.NewStore([]ledger.Transaction{
		transaction(march, ledger.Expense, "Food", total),
	})
}

func (suite *TestSuiteStandard) TestGetBudgetUnderLimit() {
	router := suite.routerFor(marchStore(12000))

	recorder := test.Request(suite.T(), router, http.MethodGet, "/v1/budget", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// 12000 is below the combined default limit of 20000.
	suite.Assert().Empty(response.Data.OverBudgetMonths)
	suite.Require().Len(response.Data.Months, 1)
	suite.Assert().Equal(types.NewMonth(2023, time.March), response.Data.Months[0].Month)
	suite.Assert().True(response.Data.Months[0].BudgetLimit.Equal(decimal.NewFromInt(20000)))
}

func (suite *TestSuiteStandard) TestGetBudgetOverLimit() {
	router := suite.routerFor(marchStore(21000))

	recorder := test.Request(suite.T(), router, http.MethodGet, "/v1/budget", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.OverBudgetMonths, 1)
	suite.Assert().Equal(types.NewMonth(2023, time.March), response.Data.OverBudgetMonths[0].Month)
	suite.Assert().True(response.Data.OverBudgetMonths[0].OverBudget)
}

func (suite *TestSuiteStandard) TestPostBudgetCustomLimits() {
	router := suite.routerFor(marchStore(12000))

	// Shrinking the limits makes March an over-budget month.
	body := `{ "food": 1000, "household": 1000, "transportation": 500, "entertainment": 500 }`
	recorder := test.Request(suite.T(), router, http.MethodPost, "/v1/budget", body, authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.OverBudgetMonths, 1)
	suite.Assert().True(response.Data.OverBudgetMonths[0].BudgetLimit.Equal(decimal.NewFromInt(3000)))
}

func (suite *TestSuiteStandard) TestPostBudgetPartialLimits() {
	router := suite.routerFor(marchStore(12000))

	// Omitted limits fall back to their defaults, so the combined limit
	// is 100 + 10000 + 3000 + 2000.
	recorder := test.Request(suite.T(), router, http.MethodPost, "/v1/budget", `{ "food": 100 }`, authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Months, 1)
	suite.Assert().True(response.Data.Months[0].BudgetLimit.Equal(decimal.NewFromInt(15100)))
}

func (suite *TestSuiteStandard) TestPostBudgetNegativeLimit() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/budget", `{ "food": -1 }`, authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestPostBudgetInvalidBody() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/budget", `{ "food": `, authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetBudgetByCategory() {
	march := time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)
	router := suite.routerFor(ledger.NewStore([]ledger.Transaction{
		transaction(march, ledger.Expense, "Food", 5500),
		transaction(march, ledger.Expense, "Entertainment", 300),
	}))

	recorder := test.Request(suite.T(), router, http.MethodGet, "/v1/budget/categories", "", authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.CategoryBudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Rows, 2)
	suite.Assert().Equal("Entertainment", response.Data.Rows[0].Category)
	suite.Assert().False(response.Data.Rows[0].OverBudget)
	suite.Assert().Equal("Food", response.Data.Rows[1].Category)
	suite.Assert().True(response.Data.Rows[1].OverBudget)
}

func (suite *TestSuiteStandard) TestPostBudgetByCategory() {
	router := suite.routerFor(marchStore(1200))

	recorder := test.Request(suite.T(), router, http.MethodPost, "/v1/budget/categories", `{ "food": 1000 }`, authHeader())
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.CategoryBudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Rows, 1)
	suite.Assert().True(response.Data.Rows[0].OverBudget)
}
