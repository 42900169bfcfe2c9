package report

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/ledger"
	"github.com/finsight/backend/internal/types"
)

// ErrInvalidLimit is returned when a budget limit is negative.
var ErrInvalidLimit = errors.New("budget limits must not be negative")

// MonthlyBudget is the budget evaluation for a single calendar month.
type MonthlyBudget struct {
	Month         types.Month     `json:"month"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	BudgetLimit   decimal.Decimal `json:"budgetLimit"`
	OverBudget    bool            `json:"overBudget"`
}

// CategoryBudget is the budget evaluation for a single category in a
// single calendar month.
type CategoryBudget struct {
	Month         types.Month     `json:"month"`
	Category      string          `json:"category"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	BudgetLimit   decimal.Decimal `json:"budgetLimit"`
	OverBudget    bool            `json:"overBudget"`
}

// EvaluateBudget sums the expenses of every calendar month that has at
// least one expense transaction and compares each monthly total against
// the sum of all limits. The comparison intentionally uses the combined
// limit for every month, not the individual per-category limits; use
// EvaluateByCategory for the per-category comparison.
//
// The first return value contains only the months exceeding the limit,
// the second the full evaluation, ordered by month.
func EvaluateBudget(s *ledger.Store, limits map[string]decimal.Decimal) ([]MonthlyBudget, []MonthlyBudget, error) {
	totalLimit, err := sumLimits(limits)
	if err != nil {
		return nil, nil, err
	}

	totals := map[types.Month]decimal.Decimal{}
	for _, t := range s.Transactions() {
		if t.Kind != ledger.Expense {
			continue
		}

		totals[t.Month()] = totals[t.Month()].Add(t.Amount)
	}

	all := make([]MonthlyBudget, 0, len(totals))
	for month, total := range totals {
		all = append(all, MonthlyBudget{
			Month:         month,
			TotalExpenses: total,
			BudgetLimit:   totalLimit,
			OverBudget:    total.GreaterThan(totalLimit),
		})
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Month.Before(all[j].Month)
	})

	over := make([]MonthlyBudget, 0, len(all))
	for _, row := range all {
		if row.OverBudget {
			over = append(over, row)
		}
	}

	return over, all, nil
}

// EvaluateByCategory compares, for every month, the expenses of each
// category that has a configured limit against that category's own limit.
// Categories without a limit are not evaluated.
//
// The returned rows are ordered by month, then by category.
func EvaluateByCategory(s *ledger.Store, limits map[string]decimal.Decimal) ([]CategoryBudget, error) {
	if _, err := sumLimits(limits); err != nil {
		return nil, err
	}

	type key struct {
		month    types.Month
		category string
	}

	totals := map[key]decimal.Decimal{}
	for _, t := range s.Transactions() {
		if t.Kind != ledger.Expense {
			continue
		}
		if _, ok := limits[t.Category]; !ok {
			continue
		}

		k := key{month: t.Month(), category: t.Category}
		totals[k] = totals[k].Add(t.Amount)
	}

	rows := make([]CategoryBudget, 0, len(totals))
	for k, total := range totals {
		rows = append(rows, CategoryBudget{
			Month:         k.month,
			Category:      k.category,
			TotalExpenses: total,
			BudgetLimit:   limits[k.category],
			OverBudget:    total.GreaterThan(limits[k.category]),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Month.Equal(rows[j].Month) {
			return rows[i].Month.Before(rows[j].Month)
		}
		return rows[i].Category < rows[j].Category
	})

	return rows, nil
}

// sumLimits adds up all limit values. Unknown category names are
// included in the sum, negative values are rejected.
func sumLimits(limits map[string]decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for category, limit := range limits {
		if limit.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: %q is negative", ErrInvalidLimit, category)
		}

		total = total.Add(limit)
	}

	return total, nil
}
