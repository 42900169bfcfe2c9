package report

import (
	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/ledger"
)

// Insights summarizes the ledger as income versus expenses.
type Insights struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Savings       decimal.Decimal `json:"savings"`
}

// ComputeInsights sums income and expenses over the full ledger.
// Savings is income minus expenses and can be negative. An empty ledger
// yields an all-zero summary.
func ComputeInsights(s *ledger.Store) Insights {
	summary := SummarizeByKind(s)

	insights := Insights{
		TotalIncome:   summary[ledger.Income],
		TotalExpenses: summary[ledger.Expense],
	}
	insights.Savings = insights.TotalIncome.Sub(insights.TotalExpenses)

	return insights
}
