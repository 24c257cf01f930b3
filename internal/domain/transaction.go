package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the direction of a transaction
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// DateFormat is the calendar-date layout used everywhere in the engine.
// Transactions carry no time-of-day component.
const DateFormat = "2006-01-02"

// Transaction represents a single financial record in the domain layer.
// Transactions are immutable once created: the log is append-only, with no
// update or delete of individual records.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal // ABSOLUTE VALUE (always positive)
	Category    string
	Description string
	Date        time.Time // calendar date, normalized to midnight UTC
	Kind        TransactionKind
}

// TransactionInput is a transaction missing only its identifier, as handed
// to the engine by external producers (forms, bulk import).
type TransactionInput struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
	Kind        TransactionKind
}

// Validate ensures the input adheres to domain rules
// Returns a ValidationError if validation fails
func (in TransactionInput) Validate() error {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("transaction amount must be positive")
	}

	if in.Kind != KindIncome && in.Kind != KindExpense {
		return NewValidationError("transaction kind must be income or expense")
	}

	if in.Date.IsZero() {
		return NewValidationError("transaction date is required")
	}

	return nil
}

// Materialize turns a validated input into a full Transaction with a
// newly-generated id.
func (in TransactionInput) Materialize() (Transaction, error) {
	if err := in.Validate(); err != nil {
		return Transaction{}, err
	}

	return Transaction{
		ID:          uuid.New(),
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        NormalizeDate(in.Date),
		Kind:        in.Kind,
	}, nil
}

// NormalizeDate truncates a timestamp to its calendar date (midnight UTC).
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO calendar date ("2006-01-02").
// Returns a ValidationError if the value does not parse.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, NewValidationError("unparseable date: " + s)
	}
	return t, nil
}
