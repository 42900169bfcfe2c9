// Package controllers implements the HTTP handlers for the analytical
// endpoints.
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/finsight/backend/internal/ledger"
)

// Server holds the dependencies of the handlers. The ledger is read
// through a Holder so that a re-ingestion can swap the store atomically
// without affecting requests that are already in flight.
type Server struct {
	Ledger *ledger.Holder
}

// NewServer returns a Server reading from the given ledger.
func NewServer(h *ledger.Holder) *Server {
	return &Server{Ledger: h}
}

// RegisterRoutes registers the analytical routes with the RouterGroup
// that is passed.
func (s *Server) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/expenses", OptionsExpenses)
		r.GET("/expenses", s.GetExpenses)
	}

	{
		r.OPTIONS("/budget", OptionsBudget)
		r.GET("/budget", s.GetBudget)
		r.POST("/budget", s.PostBudget)
		r.OPTIONS("/budget/categories", OptionsBudget)
		r.GET("/budget/categories", s.GetBudgetByCategory)
		r.POST("/budget/categories", s.PostBudgetByCategory)
	}

	{
		r.OPTIONS("/insights", OptionsInsights)
		r.GET("/insights", s.GetInsights)
	}

	{
		r.OPTIONS("/advice", OptionsAdvice)
		r.GET("/advice", s.GetAdvice)
	}
}
