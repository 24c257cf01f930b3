package ledger

import (
	"github.com/tcruz/budgetbuddy/internal/domain"
)

// Log is the monetary record store: an ordered, append-only transaction log
// kept most-recent-first. Mutations are copy-on-write: a new backing slice
// is constructed fully before being published, so a reader positioned
// between calls never observes a partially-applied batch.
//
// The log is not thread-safe by contract; the host serializes calls per user.
type Log struct {
	transactions []domain.Transaction
}

// NewLog creates a log seeded with previously-persisted transactions
// (most-recent-first order is preserved as stored)
func NewLog(existing []domain.Transaction) *Log {
	transactions := make([]domain.Transaction, len(existing))
	copy(transactions, existing)
	return &Log{transactions: transactions}
}

// Append validates the input, assigns a newly-generated id, and inserts the
// record at the head of the log. Returns the fully-populated record.
// Returns a ValidationError on non-positive amount or missing date; the log
// is untouched on failure.
func (l *Log) Append(input domain.TransactionInput) (domain.Transaction, error) {
	tx, err := input.Materialize()
	if err != nil {
		return domain.Transaction{}, err
	}

	next := make([]domain.Transaction, 0, len(l.transactions)+1)
	next = append(next, tx)
	next = append(next, l.transactions...)
	l.transactions = next

	return tx, nil
}

// AppendBatch applies the per-record contract of Append atomically: either
// every record is inserted or none is. The records are inserted as a
// contiguous block at the head of the log, preserving input order within
// the block, and are returned in input order.
// An empty batch is a no-op returning an empty slice.
func (l *Log) AppendBatch(inputs []domain.TransactionInput) ([]domain.Transaction, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	// Materialize (and validate) every record before touching the log so a
	// failure midway leaves prior state intact.
	block := make([]domain.Transaction, 0, len(inputs))
	for _, input := range inputs {
		tx, err := input.Materialize()
		if err != nil {
			return nil, err
		}
		block = append(block, tx)
	}

	next := make([]domain.Transaction, 0, len(block)+len(l.transactions))
	next = append(next, block...)
	next = append(next, l.transactions...)
	l.transactions = next

	return block, nil
}

// All returns the full ordered log (most-recent-first). The returned slice
// is a copy; mutating it has no effect on the log.
func (l *Log) All() []domain.Transaction {
	out := make([]domain.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len returns the number of records in the log
func (l *Log) Len() int {
	return len(l.transactions)
}
