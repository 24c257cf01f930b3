package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func newDashboardCommand(a *app) *cobra.Command {
	var (
		trendDays   int
		trendMonths int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the summary, insights, and budget alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.engine.Summary()
			cmd.Printf("Income        %12s\n", s.TotalIncome.StringFixed(2))
			cmd.Printf("Expenses      %12s\n", s.TotalExpenses.StringFixed(2))
			cmd.Printf("Net balance   %12s\n", s.NetBalance.StringFixed(2))
			cmd.Printf("Budget        %12s of %s allocated spent\n", s.TotalSpent.StringFixed(2), s.TotalAllocated.StringFixed(2))
			cmd.Printf("Goals         %d active, %d completed\n", s.ActiveGoals, s.CompletedGoals)
			cmd.Printf("Buddy points  %d\n", a.engine.Points())

			if top, ok := a.engine.TopCategory(); ok {
				cmd.Printf("\nTop spending category: %s (%s)\n", top.Category, top.Total.StringFixed(2))
			}
			if over := a.engine.OverBudgetCount(); over > 0 {
				cmd.Printf("Over budget in %d category(ies)\n", over)
			}
			cmd.Printf("Savings rate: %s%%\n", a.engine.SavingsRate().Round(1).String())

			if trendMonths > 0 {
				cmd.Println("\nMonthly comparison:")
				for _, p := range a.engine.MonthlySeries(trendMonths, time.Now()) {
					cmd.Printf("  %s  income %10s  expenses %10s\n",
						p.Month.Format("2006-01"), p.Income.StringFixed(2), p.Expenses.StringFixed(2))
				}
			}
			if trendDays > 0 {
				cmd.Println("\nDaily spending:")
				for _, p := range a.engine.DailySpending(trendDays, time.Now()) {
					cmd.Printf("  %s  %10s\n", p.Day.Format("2006-01-02"), p.Spent.StringFixed(2))
				}
			}

			alerts := a.engine.BudgetAlerts(cmd.Context())
			if len(alerts) > 0 {
				cmd.Println("\nBudget alerts:")
				for _, alert := range alerts {
					cmd.Printf("  [%s] %s\n", alert.Severity, alert.Message)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&trendMonths, "months", 0, "include a monthly income/expense comparison over N months")
	cmd.Flags().IntVar(&trendDays, "days", 0, "include a daily spending trend over N days")

	return cmd
}
