package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingColumn is returned when the ledger source header does not
	// contain all required columns.
	ErrMissingColumn = errors.New("the ledger source is missing a required column")

	// ErrNoRecords is returned when not a single valid transaction could
	// be read from the ledger source.
	ErrNoRecords = errors.New("the ledger source does not contain any valid transactions")
)

// The column names of the ledger export format. Header matching is
// case-insensitive and ignores spaces around the "/".
const (
	columnDate        = "date/time"
	columnKind        = "income/expense"
	columnCategory    = "category"
	columnSubcategory = "sub category"
	columnMode        = "mode"
	columnAmount      = "debit/credit"
)

// dateLayouts are tried in order when parsing the Date/Time column.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
}

// ParseCSV reads a ledger export and returns a Store with all valid
// transactions. Rows with missing fields, unparseable dates or amounts,
// an unknown transaction kind, or a negative amount are dropped.
func ParseCSV(f io.Reader) (*Store, error) {
	reader := csv.NewReader(f)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read the ledger header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var transactions []Transaction
	var dropped int

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, _ := reader.FieldPos(1)
			return nil, fmt.Errorf("error in line %d of the ledger: %w", line, err)
		}

		transaction, ok := parseRow(record, columns)
		if !ok {
			dropped++
			continue
		}

		transactions = append(transactions, transaction)
	}

	if dropped > 0 {
		log.Warn().Int("dropped", dropped).Int("kept", len(transactions)).Msg("dropped invalid ledger rows")
	}

	if len(transactions) == 0 {
		return nil, ErrNoRecords
	}

	return NewStore(transactions), nil
}

// mapColumns resolves the required column names to their indices in the header.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[normalizeColumn(name)] = i
	}

	for _, name := range []string{columnDate, columnKind, columnCategory, columnSubcategory, columnMode, columnAmount} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	return columns, nil
}

func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " /", "/")
	return strings.ReplaceAll(name, "/ ", "/")
}

// parseRow converts a single CSV record into a Transaction. The second
// return value reports whether the row is valid.
func parseRow(record []string, columns map[string]int) (Transaction, bool) {
	field := func(name string) string {
		return strings.TrimSpace(record[columns[name]])
	}

	for _, name := range []string{columnDate, columnKind, columnCategory, columnSubcategory, columnMode, columnAmount} {
		if field(name) == "" {
			return Transaction{}, false
		}
	}

	date, ok := parseDate(field(columnDate))
	if !ok {
		return Transaction{}, false
	}

	kind, ok := ParseKind(field(columnKind))
	if !ok {
		return Transaction{}, false
	}

	amount, err := decimal.NewFromString(field(columnAmount))
	if err != nil || amount.IsNegative() {
		return Transaction{}, false
	}

	return Transaction{
		Date:        date,
		Kind:        kind,
		Category:    field(columnCategory),
		Subcategory: field(columnSubcategory),
		Mode:        field(columnMode),
		Amount:      amount,
	}, true
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, s); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}
