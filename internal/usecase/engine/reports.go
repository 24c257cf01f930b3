package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tcruz/budgetbuddy/internal/usecase/insights"
)

// Read-only reporting surface. These delegate to the insights package over
// the engine's current state and never mutate anything.

// Summary returns the headline dashboard figures
func (e *Engine) Summary() insights.Summary {
	return insights.Summarize(e.transactions.All(), e.allocations, e.goals.All())
}

// TopCategory returns the highest-spend expense category, if any
func (e *Engine) TopCategory() (insights.CategoryTotal, bool) {
	return insights.TopCategory(e.transactions.All())
}

// OverBudgetCount returns how many categories are over their allocation
func (e *Engine) OverBudgetCount() int {
	return insights.OverBudgetCount(e.allocations)
}

// SavingsRate returns the savings rate as a percentage of income
func (e *Engine) SavingsRate() decimal.Decimal {
	return insights.SavingsRate(e.transactions.All())
}

// MonthlySeries returns income/expense totals for the last months months
func (e *Engine) MonthlySeries(months int, now time.Time) []insights.MonthlyPoint {
	return insights.MonthlySeries(e.transactions.All(), months, now)
}

// DailySpending returns expense totals for the last days days
func (e *Engine) DailySpending(days int, now time.Time) []insights.DailyPoint {
	return insights.DailySpending(e.transactions.All(), days, now)
}
