package reward

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

func allocation(category string, allocated, spent int64) domain.BudgetAllocation {
	return domain.BudgetAllocation{
		Category:  category,
		Allocated: decimal.NewFromInt(allocated),
		Spent:     decimal.NewFromInt(spent),
	}
}

func TestScanBudgets_OverspentCategoryIsCritical(t *testing.T) {
	// 600 / 500 = 120% >= 90%
	alerts := ScanBudgets([]domain.BudgetAllocation{
		allocation("Food", 500, 600),
	})

	assert.Equal(t, 1, len(alerts))
	assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, "Food", alerts[0].Category)
	assert.True(t, decimal.NewFromInt(120).Equal(alerts[0].Percentage))
	assert.Contains(t, alerts[0].Message, "120% of your Food budget")
}

func TestScanBudgets_Thresholds(t *testing.T) {
	tests := []struct {
		name         string
		allocated    int64
		spent        int64
		wantAlert    bool
		wantSeverity domain.AlertSeverity
	}{
		{name: "below warning", allocated: 100, spent: 74, wantAlert: false},
		{name: "warning boundary", allocated: 100, spent: 75, wantAlert: true, wantSeverity: domain.SeverityWarning},
		{name: "just under critical", allocated: 100, spent: 89, wantAlert: true, wantSeverity: domain.SeverityWarning},
		{name: "critical boundary", allocated: 100, spent: 90, wantAlert: true, wantSeverity: domain.SeverityCritical},
		{name: "fully spent", allocated: 100, spent: 100, wantAlert: true, wantSeverity: domain.SeverityCritical},
		{name: "nothing spent", allocated: 100, spent: 0, wantAlert: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := ScanBudgets([]domain.BudgetAllocation{
				allocation("Shopping", tt.allocated, tt.spent),
			})
			if tt.wantAlert {
				assert.Equal(t, 1, len(alerts))
				assert.Equal(t, tt.wantSeverity, alerts[0].Severity)
			} else {
				assert.Empty(t, alerts)
			}
		})
	}
}

func TestScanBudgets_ZeroAllocationNeverAlerts(t *testing.T) {
	alerts := ScanBudgets([]domain.BudgetAllocation{
		allocation("Misc", 0, 300), // percentage undefined
	})

	assert.Empty(t, alerts)
}

func TestScanBudgets_OneAlertPerQualifyingCategory(t *testing.T) {
	alerts := ScanBudgets([]domain.BudgetAllocation{
		allocation("Food", 500, 600),      // critical
		allocation("Shopping", 300, 240),  // 80% -> warning
		allocation("Healthcare", 100, 10), // fine
	})

	assert.Equal(t, 2, len(alerts))
	assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, domain.SeverityWarning, alerts[1].Severity)
}
