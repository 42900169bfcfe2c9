// Package storage reads and writes the ledger in a sqlite database, as
// an alternative to the CSV export format.
package storage

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"github.com/finsight/backend/internal/ledger"
)

// Transaction is the database representation of a ledger entry.
type Transaction struct {
	ID          uuid.UUID       `json:"id" gorm:"primaryKey"`
	Date        time.Time       `json:"date"`
	Kind        string          `json:"kind"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Mode        string          `json:"mode"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}

// BeforeCreate sets a new ID if it is not set yet.
func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	return nil
}

// BeforeSave sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// Open connects to the sqlite database at the given path and migrates
// the schema.
func Open(path string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(path), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Transaction{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// LoadStore reads all transactions from the database and returns them
// as a ledger store. Rows that do not form a valid transaction are
// dropped. If no valid rows remain, ledger.ErrNoRecords is returned.
func LoadStore(db *gorm.DB) (*ledger.Store, error) {
	var rows []Transaction
	err := db.Order("date").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not read transactions: %w", err)
	}

	var transactions []ledger.Transaction
	var dropped int

	for _, row := range rows {
		transaction, ok := row.toLedger()
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
		return nil, ledger.ErrNoRecords
	}

	return ledger.NewStore(transactions), nil
}

// Replace wipes the transactions table and inserts the given ledger.
func Replace(db *gorm.DB, transactions []ledger.Transaction) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("1 = 1").Delete(&Transaction{}).Error
		if err != nil {
			return err
		}

		for _, t := range transactions {
			row := Transaction{
				Date:        t.Date,
				Kind:        string(t.Kind),
				Category:    t.Category,
				Subcategory: t.Subcategory,
				Mode:        t.Mode,
				Amount:      t.Amount,
			}

			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// toLedger converts a database row into a ledger transaction. The
// second return value reports whether the row is valid.
func (t Transaction) toLedger() (ledger.Transaction, bool) {
	kind, ok := ledger.ParseKind(t.Kind)
	if !ok {
		return ledger.Transaction{}, false
	}

	if t.Date.IsZero() || t.Category == "" || t.Subcategory == "" || t.Mode == "" || t.Amount.IsNegative() {
		return ledger.Transaction{}, false
	}

	return ledger.Transaction{
		Date:        t.Date.In(time.UTC),
		Kind:        kind,
		Category:    t.Category,
		Subcategory: t.Subcategory,
		Mode:        t.Mode,
		Amount:      t.Amount,
	}, true
}
