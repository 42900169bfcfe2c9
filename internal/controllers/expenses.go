package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finsight/backend/internal/charts"
	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/report"
)

type ExpensesResponse struct {
	Data ExpensesObject `json:"data"`
}

type ExpensesObject struct {
	// Summary maps each expense category to its summed amount.
	Summary report.CategorySummary `json:"summary"`

	// Chart is a PNG data URL with the summary as a bar chart. Empty
	// when the ledger has no expenses.
	Chart string `json:"chart,omitempty"`
}

// OptionsExpenses returns the allowed HTTP verbs.
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetExpenses returns the expenses grouped by category, together with a
// bar chart rendering of the summary.
func (s *Server) GetExpenses(c *gin.Context) {
	summary := report.SummarizeByCategory(s.Ledger.Current())

	chart, err := charts.Bar("Expenses by Category", summary)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpensesResponse{
		Data: ExpensesObject{
			Summary: summary,
			Chart:   chart,
		},
	})
}
