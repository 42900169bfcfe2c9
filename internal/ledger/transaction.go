// Package ledger holds the in-memory transaction table that every
// analytical component reads.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsight/backend/internal/types"
)

// Kind is the direction of a transaction.
type Kind string

const (
	Income  Kind = "Income"
	Expense Kind = "Expense"
)

// ParseKind returns the Kind a string represents.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case Income:
		return Income, true
	case Expense:
		return Expense, true
	}

	return "", false
}

// Transaction is a single ledger entry.
//
// The amount is always non-negative, the direction of the money flow
// is determined by Kind.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Kind        Kind            `json:"kind"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Mode        string          `json:"mode"`
	Amount      decimal.Decimal `json:"amount"`
}

// Month returns the calendar month the transaction occurred in.
func (t Transaction) Month() types.Month {
	return types.MonthOf(t.Date)
}
