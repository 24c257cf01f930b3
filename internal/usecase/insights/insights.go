package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

// Pure derivations over the ledger state. Everything here is read-only
// reporting: no mutation, no reward evaluation.

// Summary aggregates the headline figures for a dashboard view
type Summary struct {
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	NetBalance     decimal.Decimal // income - expenses
	TotalAllocated decimal.Decimal
	TotalSpent     decimal.Decimal
	ActiveGoals    int
	CompletedGoals int
}

// Summarize computes the dashboard summary from the three collections
func Summarize(transactions []domain.Transaction, allocations []domain.BudgetAllocation, goals []domain.Goal) Summary {
	var s Summary
	s.TotalIncome = decimal.Zero
	s.TotalExpenses = decimal.Zero
	s.TotalAllocated = decimal.Zero
	s.TotalSpent = decimal.Zero

	for _, tx := range transactions {
		switch tx.Kind {
		case domain.KindIncome:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case domain.KindExpense:
			s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
		}
	}
	s.NetBalance = s.TotalIncome.Sub(s.TotalExpenses)

	for _, alloc := range allocations {
		s.TotalAllocated = s.TotalAllocated.Add(alloc.Allocated)
		s.TotalSpent = s.TotalSpent.Add(alloc.Spent)
	}

	for _, g := range goals {
		if g.IsCompleted {
			s.CompletedGoals++
		} else {
			s.ActiveGoals++
		}
	}

	return s
}

// CategoryTotal pairs a category label with its total expense amount
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// TopCategory returns the category with the highest expense total.
// The second return is false when the log holds no expenses. Ties resolve
// to the category seen first in the log.
func TopCategory(transactions []domain.Transaction) (CategoryTotal, bool) {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, tx := range transactions {
		if tx.Kind != domain.KindExpense {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	if len(order) == 0 {
		return CategoryTotal{}, false
	}

	top := CategoryTotal{Category: order[0], Total: totals[order[0]]}
	for _, category := range order[1:] {
		if totals[category].GreaterThan(top.Total) {
			top = CategoryTotal{Category: category, Total: totals[category]}
		}
	}
	return top, true
}

// OverBudgetCount returns the number of categories with spent > allocated
func OverBudgetCount(allocations []domain.BudgetAllocation) int {
	count := 0
	for _, alloc := range allocations {
		if alloc.Spent.GreaterThan(alloc.Allocated) {
			count++
		}
	}
	return count
}

// SavingsRate computes (income - expenses) / income * 100.
// Returns zero when there is no income.
func SavingsRate(transactions []domain.Transaction) decimal.Decimal {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range transactions {
		switch tx.Kind {
		case domain.KindIncome:
			income = income.Add(tx.Amount)
		case domain.KindExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}

	if income.IsZero() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(decimal.NewFromInt(100))
}

// MonthlyPoint holds one month's income and expense totals
type MonthlyPoint struct {
	Month    time.Time // first calendar day of the month
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// MonthlySeries returns per-month income and expense totals for the last
// months calendar months ending at now, oldest first.
func MonthlySeries(transactions []domain.Transaction, months int, now time.Time) []MonthlyPoint {
	if months <= 0 {
		return nil
	}

	series := make([]MonthlyPoint, months)
	index := make(map[time.Time]int, months)
	for i := 0; i < months; i++ {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, i-(months-1), 0)
		series[i] = MonthlyPoint{Month: month, Income: decimal.Zero, Expenses: decimal.Zero}
		index[month] = i
	}

	for _, tx := range transactions {
		month := time.Date(tx.Date.Year(), tx.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		i, ok := index[month]
		if !ok {
			continue
		}
		switch tx.Kind {
		case domain.KindIncome:
			series[i].Income = series[i].Income.Add(tx.Amount)
		case domain.KindExpense:
			series[i].Expenses = series[i].Expenses.Add(tx.Amount)
		}
	}

	return series
}

// DailyPoint holds one calendar day's expense total
type DailyPoint struct {
	Day   time.Time
	Spent decimal.Decimal
}

// DailySpending returns per-day expense totals for the last days calendar
// days ending at now, oldest first.
func DailySpending(transactions []domain.Transaction, days int, now time.Time) []DailyPoint {
	if days <= 0 {
		return nil
	}

	series := make([]DailyPoint, days)
	index := make(map[time.Time]int, days)
	for i := 0; i < days; i++ {
		day := domain.NormalizeDate(now).AddDate(0, 0, i-(days-1))
		series[i] = DailyPoint{Day: day, Spent: decimal.Zero}
		index[day] = i
	}

	for _, tx := range transactions {
		if tx.Kind != domain.KindExpense {
			continue
		}
		i, ok := index[tx.Date]
		if !ok {
			continue
		}
		series[i].Spent = series[i].Spent.Add(tx.Amount)
	}

	return series
}
