package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal entity in the domain layer.
// CurrentAmount always satisfies 0 <= CurrentAmount <= TargetAmount; the
// goal ledger enforces the invariant, never callers.
type Goal struct {
	ID            uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal // always positive
	CurrentAmount decimal.Decimal
	Deadline      time.Time // calendar date
	Category      string    // informational only, not linked to an allocation
	IsCompleted   bool      // sticky once reached
}

// Validate ensures the goal adheres to domain rules
// Returns a ValidationError if validation fails
func (g Goal) Validate() error {
	if g.Title == "" {
		return NewValidationError("goal title cannot be empty")
	}

	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return NewValidationError("goal target amount must be positive")
	}

	if g.CurrentAmount.IsNegative() || g.CurrentAmount.GreaterThan(g.TargetAmount) {
		return NewValidationError("goal current amount must be between zero and the target")
	}

	return nil
}
