package reward

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

// Alert thresholds as percentages of the allocated budget
var (
	warningThreshold  = decimal.NewFromInt(75)
	criticalThreshold = decimal.NewFromInt(90)
)

var oneHundred = decimal.NewFromInt(100)

// ScanBudgets performs the pull-style budget alert scan: one alert per
// qualifying category, read-only, no effect on point balance or persisted
// state. A category with allocated = 0 has an undefined percentage and
// never alerts.
func ScanBudgets(allocations []domain.BudgetAllocation) []domain.BudgetAlert {
	var alerts []domain.BudgetAlert

	for _, alloc := range allocations {
		if alloc.Allocated.IsZero() {
			continue
		}

		percentage := alloc.Spent.Div(alloc.Allocated).Mul(oneHundred)

		var severity domain.AlertSeverity
		switch {
		case percentage.GreaterThanOrEqual(criticalThreshold):
			severity = domain.SeverityCritical
		case percentage.GreaterThanOrEqual(warningThreshold):
			severity = domain.SeverityWarning
		default:
			continue
		}

		alerts = append(alerts, domain.BudgetAlert{
			Category:   alloc.Category,
			Severity:   severity,
			Percentage: percentage,
			Message: fmt.Sprintf("you've spent %s%% of your %s budget",
				percentage.Round(0).String(), alloc.Category),
		})
	}

	return alerts
}
