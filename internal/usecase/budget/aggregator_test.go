package budget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

func tx(amount int64, category string, kind domain.TransactionKind) domain.Transaction {
	return domain.Transaction{
		ID:       uuid.New(),
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Date:     time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Kind:     kind,
	}
}

func alloc(category string, allocated int64) domain.BudgetAllocation {
	return domain.BudgetAllocation{
		Category:  category,
		Allocated: decimal.NewFromInt(allocated),
		Spent:     decimal.Zero,
	}
}

func TestRecompute_SumsExpensesByCategory(t *testing.T) {
	transactions := []domain.Transaction{
		tx(100, "Food & Dining", domain.KindExpense),
		tx(50, "Food & Dining", domain.KindExpense),
		tx(30, "Shopping", domain.KindExpense),
		tx(2500, "Food & Dining", domain.KindIncome), // income never contributes
	}
	allocations := []domain.BudgetAllocation{
		alloc("Food & Dining", 500),
		alloc("Shopping", 300),
		alloc("Healthcare", 100),
	}

	result := Recompute(transactions, allocations)

	assert.Equal(t, 3, len(result))
	assert.True(t, decimal.NewFromInt(150).Equal(result[0].Spent))
	assert.True(t, decimal.NewFromInt(30).Equal(result[1].Spent))
	assert.True(t, decimal.Zero.Equal(result[2].Spent), "category with no transactions yields zero")

	// Allocated untouched, ordering preserved
	assert.Equal(t, "Food & Dining", result[0].Category)
	assert.True(t, decimal.NewFromInt(500).Equal(result[0].Allocated))
}

func TestRecompute_CategoryMatchIsCaseSensitive(t *testing.T) {
	transactions := []domain.Transaction{
		tx(100, "food & dining", domain.KindExpense),
	}
	allocations := []domain.BudgetAllocation{
		alloc("Food & Dining", 500),
	}

	result := Recompute(transactions, allocations)

	assert.True(t, result[0].Spent.IsZero())
}

func TestRecompute_OrphanedCategoryContributesNothing(t *testing.T) {
	transactions := []domain.Transaction{
		tx(75, "Gambling", domain.KindExpense), // no matching allocation
	}
	allocations := []domain.BudgetAllocation{
		alloc("Food & Dining", 500),
	}

	result := Recompute(transactions, allocations)

	assert.Equal(t, 1, len(result))
	assert.True(t, result[0].Spent.IsZero())
}

func TestRecompute_IndependentOfTransactionOrder(t *testing.T) {
	a := tx(10, "Food & Dining", domain.KindExpense)
	b := tx(20, "Food & Dining", domain.KindExpense)
	c := tx(30, "Shopping", domain.KindExpense)
	allocations := []domain.BudgetAllocation{
		alloc("Food & Dining", 500),
		alloc("Shopping", 300),
	}

	forward := Recompute([]domain.Transaction{a, b, c}, allocations)
	reversed := Recompute([]domain.Transaction{c, b, a}, allocations)

	for i := range forward {
		assert.True(t, forward[i].Spent.Equal(reversed[i].Spent))
	}
}

func TestRecompute_DoesNotMutateInput(t *testing.T) {
	transactions := []domain.Transaction{
		tx(100, "Food & Dining", domain.KindExpense),
	}
	allocations := []domain.BudgetAllocation{
		alloc("Food & Dining", 500),
	}

	_ = Recompute(transactions, allocations)

	assert.True(t, allocations[0].Spent.IsZero(), "input allocation set untouched")
}

func TestSetAllocated_UpdatesMatchingCategory(t *testing.T) {
	allocations := []domain.BudgetAllocation{
		alloc("Food & Dining", 500),
		alloc("Shopping", 300),
	}

	result, err := SetAllocated(allocations, "Shopping", decimal.NewFromInt(450))

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(450).Equal(result[1].Allocated))
	assert.True(t, decimal.NewFromInt(500).Equal(result[0].Allocated))
	assert.True(t, decimal.NewFromInt(300).Equal(allocations[1].Allocated), "input untouched")
}

func TestSetAllocated_UnknownCategoryIsNoOp(t *testing.T) {
	allocations := []domain.BudgetAllocation{
		alloc("Food & Dining", 500),
	}

	result, err := SetAllocated(allocations, "Travel", decimal.NewFromInt(100))

	assert.NoError(t, err)
	assert.Equal(t, allocations, result)
}

func TestSetAllocated_RejectsNegativeAmount(t *testing.T) {
	allocations := []domain.BudgetAllocation{
		alloc("Food & Dining", 500),
	}

	_, err := SetAllocated(allocations, "Food & Dining", decimal.NewFromInt(-1))

	assert.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestSetAllocated_ZeroIsAllowed(t *testing.T) {
	allocations := []domain.BudgetAllocation{
		alloc("Food & Dining", 500),
	}

	result, err := SetAllocated(allocations, "Food & Dining", decimal.Zero)

	assert.NoError(t, err)
	assert.True(t, result[0].Allocated.IsZero())
}
