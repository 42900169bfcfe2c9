package ledger

import "sync/atomic"

// Store is an immutable snapshot of the ledger. All analytical
// components derive their results from a Store; none of them mutate it.
type Store struct {
	transactions []Transaction
}

// NewStore returns a Store holding a copy of the transactions passed in.
func NewStore(transactions []Transaction) *Store {
	records := make([]Transaction, len(transactions))
	copy(records, transactions)

	return &Store{transactions: records}
}

// Transactions returns all transactions in the store.
//
// The returned slice is a copy, modifying it does not affect the store.
func (s *Store) Transactions() []Transaction {
	records := make([]Transaction, len(s.transactions))
	copy(records, s.transactions)

	return records
}

// Len returns the number of transactions in the store.
func (s *Store) Len() int {
	return len(s.transactions)
}

// Holder publishes the current Store to readers. Replacing the ledger,
// e.g. after a re-ingestion, is an atomic swap so that an operation
// already in flight keeps reading the snapshot it started with.
type Holder struct {
	current atomic.Pointer[Store]
}

// NewHolder returns a Holder publishing the given store.
func NewHolder(s *Store) *Holder {
	h := &Holder{}
	h.current.Store(s)
	return h
}

// Current returns the currently published store.
func (h *Holder) Current() *Store {
	return h.current.Load()
}

// Swap atomically replaces the published store.
func (h *Holder) Swap(s *Store) {
	h.current.Store(s)
}
