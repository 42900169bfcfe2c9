// Package forecast predicts the magnitude of a transaction from its
// categorical attributes and measures how well that prediction
// generalizes to held-out data.
package forecast

import (
	"sort"

	"github.com/finsight/backend/internal/ledger"
)

// The categorical fields that become one-hot columns, in encoding order.
const (
	fieldCategory    = "Category"
	fieldSubcategory = "Sub category"
	fieldMode        = "Mode"
	fieldKind        = "Income/Expense"
)

type column struct {
	field string
	value string
}

// Schema is the one-hot encoding vocabulary. It is computed once over
// the full ledger and reused for every encode call, so every value that
// appears anywhere in the data has a column, regardless of which split
// it ends up in.
type Schema struct {
	columns []column
}

// NewSchema builds the encoding schema from all transactions.
func NewSchema(transactions []ledger.Transaction) Schema {
	fields := []struct {
		name  string
		value func(ledger.Transaction) string
	}{
		{fieldCategory, func(t ledger.Transaction) string { return t.Category }},
		{fieldSubcategory, func(t ledger.Transaction) string { return t.Subcategory }},
		{fieldMode, func(t ledger.Transaction) string { return t.Mode }},
		{fieldKind, func(t ledger.Transaction) string { return string(t.Kind) }},
	}

	var columns []column
	for _, field := range fields {
		seen := map[string]bool{}
		for _, t := range transactions {
			seen[field.value(t)] = true
		}

		values := make([]string, 0, len(seen))
		for value := range seen {
			values = append(values, value)
		}
		sort.Strings(values)

		for _, value := range values {
			columns = append(columns, column{field: field.name, value: value})
		}
	}

	return Schema{columns: columns}
}

// Width returns the number of columns in the schema.
func (s Schema) Width() int {
	return len(s.columns)
}

// Columns returns the column labels in encoding order.
func (s Schema) Columns() []string {
	labels := make([]string, len(s.columns))
	for i, c := range s.columns {
		labels[i] = c.field + "=" + c.value
	}

	return labels
}

// Encode returns the one-hot feature vector for a transaction.
func (s Schema) Encode(t ledger.Transaction) []float64 {
	vector := make([]float64, len(s.columns))
	for i, c := range s.columns {
		var value string
		switch c.field {
		case fieldCategory:
			value = t.Category
		case fieldSubcategory:
			value = t.Subcategory
		case fieldMode:
			value = t.Mode
		case fieldKind:
			value = string(t.Kind)
		}

		if value == c.value {
			vector[i] = 1
		}
	}

	return vector
}
