// Package report derives aggregated views from the ledger.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/ledger"
)

// CategorySummary maps a category name to the summed expense amount
// for that category.
type CategorySummary map[string]decimal.Decimal

// SummarizeByCategory sums the amounts of all expense transactions,
// grouped by category. An empty ledger yields an empty summary.
func SummarizeByCategory(s *ledger.Store) CategorySummary {
	summary := CategorySummary{}

	for _, t := range s.Transactions() {
		if t.Kind != ledger.Expense {
			continue
		}

		summary[t.Category] = summary[t.Category].Add(t.Amount)
	}

	return summary
}

// SummarizeByKind sums the amounts of all transactions, grouped by
// transaction kind. Only kinds present in the ledger appear in the result.
func SummarizeByKind(s *ledger.Store) map[ledger.Kind]decimal.Decimal {
	summary := map[ledger.Kind]decimal.Decimal{}

	for _, t := range s.Transactions() {
		summary[t.Kind] = summary[t.Kind].Add(t.Amount)
	}

	return summary
}
