package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/charts"
	"github.com/finsight/backend/internal/httputil"
	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/report"
)

type InsightsResponse struct {
	Data InsightsObject `json:"data"`
}

type InsightsObject struct {
	report.Insights

	// ByKind is the income versus expense split.
	ByKind map[ledger.Kind]decimal.Decimal `json:"byKind"`

	// Chart is a PNG data URL with the split as a pie chart. Empty when
	// the ledger is empty.
	Chart string `json:"chart,omitempty"`
}

// OptionsInsights returns the allowed HTTP verbs.
func OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetInsights returns total income, total expenses and savings,
// together with a pie chart of the income versus expense split.
func (s *Server) GetInsights(c *gin.Context) {
	store := s.Ledger.Current()

	insights := report.ComputeInsights(store)
	byKind := report.SummarizeByKind(store)

	chart, err := charts.Pie("Income vs Expenses", byKind)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, InsightsResponse{
		Data: InsightsObject{
			Insights: insights,
			ByKind:   byKind,
			Chart:    chart,
		},
	})
}
