package domain

import (
	"github.com/shopspring/decimal"
)

// BudgetAllocation represents the budgeted ceiling for a single category.
// Allocated is user-set; Spent is derived from the transaction log and is
// never settable directly.
type BudgetAllocation struct {
	Category  string
	Allocated decimal.Decimal // non-negative, user-set ceiling
	Spent     decimal.Decimal // derived: sum of expense amounts in Category
}

// Validate ensures the allocation adheres to domain rules
func (b BudgetAllocation) Validate() error {
	if b.Category == "" {
		return NewValidationError("allocation category cannot be empty")
	}

	if b.Allocated.IsNegative() {
		return NewValidationError("allocated amount must be non-negative")
	}

	return nil
}
