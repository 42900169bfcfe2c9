package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/report"
)

// The default monthly limits, used when the caller does not supply
// their own.
var defaultLimits = map[string]decimal.Decimal{
	"Food":           decimal.NewFromInt(5000),
	"Household":      decimal.NewFromInt(10000),
	"Transportation": decimal.NewFromInt(3000),
	"Entertainment":  decimal.NewFromInt(2000),
}

// BudgetRequest configures the budget evaluation. Limits that are not
// set fall back to their defaults.
type BudgetRequest struct {
	Food           *decimal.Decimal `json:"food"`
	Household      *decimal.Decimal `json:"household"`
	Transportation *decimal.Decimal `json:"transportation"`
	Entertainment  *decimal.Decimal `json:"entertainment"`
}

func (r BudgetRequest) limits() map[string]decimal.Decimal {
	limits := make(map[string]decimal.Decimal, len(defaultLimits))
	for category, limit := range defaultLimits {
		limits[category] = limit
	}

	set := func(category string, limit *decimal.Decimal) {
		if limit != nil {
			limits[category] = *limit
		}
	}

	set("Food", r.Food)
	set("Household", r.Household)
	set("Transportation", r.Transportation)
	set("Entertainment", r.Entertainment)

	return limits
}

type BudgetResponse struct {
	Data BudgetObject `json:"data"`
}

type BudgetObject struct {
	// OverBudgetMonths lists only the months whose expenses exceed the
	// combined limit.
	OverBudgetMonths []report.MonthlyBudget `json:"overBudgetMonths"`

	// Months is the full evaluation, one row per month with expenses.
	Months []report.MonthlyBudget `json:"months"`

	// Limits are the per-category limits the evaluation used.
	Limits map[string]decimal.Decimal `json:"limits"`
}

type CategoryBudgetResponse struct {
	Data CategoryBudgetObject `json:"data"`
}

type CategoryBudgetObject struct {
	// Rows is the per-month, per-category evaluation for every category
	// with a configured limit.
	Rows []report.CategoryBudget `json:"rows"`

	// Limits are the per-category limits the evaluation used.
	Limits map[string]decimal.Decimal `json:"limits"`
}

// OptionsBudget returns the allowed HTTP verbs.
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// GetBudget evaluates the monthly budget with the default limits.
func (s *Server) GetBudget(c *gin.Context) {
	s.evaluateBudget(c, defaultLimits)
}

// PostBudget evaluates the monthly budget with the limits from the
// request body. Omitted limits fall back to their defaults.
func (s *Server) PostBudget(c *gin.Context) {
	var request BudgetRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	s.evaluateBudget(c, request.limits())
}

func (s *Server) evaluateBudget(c *gin.Context, limits map[string]decimal.Decimal) {
	over, all, err := report.EvaluateBudget(s.Ledger.Current(), limits)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{
		Data: BudgetObject{
			OverBudgetMonths: over,
			Months:           all,
			Limits:           limits,
		},
	})
}

// GetBudgetByCategory evaluates each category against its own limit,
// using the default limits.
func (s *Server) GetBudgetByCategory(c *gin.Context) {
	s.evaluateBudgetByCategory(c, defaultLimits)
}

// PostBudgetByCategory evaluates each category against its own limit,
// using the limits from the request body.
func (s *Server) PostBudgetByCategory(c *gin.Context) {
	var request BudgetRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	s.evaluateBudgetByCategory(c, request.limits())
}

func (s *Server) evaluateBudgetByCategory(c *gin.Context, limits map[string]decimal.Decimal) {
	rows, err := report.EvaluateByCategory(s.Ledger.Current(), limits)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryBudgetResponse{
		Data: CategoryBudgetObject{
			Rows:   rows,
			Limits: limits,
		},
	})
}
