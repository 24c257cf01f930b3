package budget

import (
	"github.com/shopspring/decimal"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

// Recompute derives the spent field of every allocation from the transaction
// log. Pure function:
//   - spent := sum of amounts of expense-kind transactions whose category
//     equals the allocation's category (case-sensitive exact match)
//   - categories with no matching transactions yield spent = 0
//   - allocated fields are untouched, category ordering is preserved
//
// Transactions referencing a category with no matching allocation contribute
// to no aggregate (orphaned category).
func Recompute(transactions []domain.Transaction, allocations []domain.BudgetAllocation) []domain.BudgetAllocation {
	spentByCategory := make(map[string]decimal.Decimal, len(allocations))
	for _, alloc := range allocations {
		spentByCategory[alloc.Category] = decimal.Zero
	}

	for _, tx := range transactions {
		if tx.Kind != domain.KindExpense {
			continue
		}
		spent, ok := spentByCategory[tx.Category]
		if !ok {
			continue
		}
		spentByCategory[tx.Category] = spent.Add(tx.Amount)
	}

	out := make([]domain.BudgetAllocation, len(allocations))
	for i, alloc := range allocations {
		out[i] = domain.BudgetAllocation{
			Category:  alloc.Category,
			Allocated: alloc.Allocated,
			Spent:     spentByCategory[alloc.Category],
		}
	}
	return out
}

// SetAllocated returns a new allocation set with the allocated field of the
// given category replaced. The category set is fixed and pre-seeded: if the
// category is absent this is a no-op returning the input unchanged.
// amount must be non-negative (ValidationError otherwise).
func SetAllocated(allocations []domain.BudgetAllocation, category string, amount decimal.Decimal) ([]domain.BudgetAllocation, error) {
	if amount.IsNegative() {
		return nil, domain.NewValidationError("allocated amount must be non-negative")
	}

	out := make([]domain.BudgetAllocation, len(allocations))
	copy(out, allocations)
	for i := range out {
		if out[i].Category == category {
			out[i].Allocated = amount
		}
	}
	return out, nil
}
