package commands

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

func newBudgetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "View and adjust category budgets",
	}

	cmd.AddCommand(newBudgetListCommand(a))
	cmd.AddCommand(newBudgetSetCommand(a))

	return cmd
}

func newBudgetListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every category with its allocation and derived spend",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, alloc := range a.engine.Budgets() {
				cmd.Printf("%-20s allocated %10s  spent %10s\n",
					alloc.Category, alloc.Allocated.StringFixed(2), alloc.Spent.StringFixed(2))
			}
			return nil
		},
	}
}

func newBudgetSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set the allocated ceiling for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return domain.NewValidationError("invalid amount: " + args[1])
			}

			allocations, err := a.engine.SetBudget(cmd.Context(), args[0], amount)
			if err = warnIfStale(cmd, err); err != nil {
				return err
			}

			for _, alloc := range allocations {
				if alloc.Category == args[0] {
					cmd.Printf("%s allocated %s\n", alloc.Category, alloc.Allocated.StringFixed(2))
					return nil
				}
			}
			cmd.Printf("category %q is not in the configured set; nothing changed\n", args[0])
			return nil
		},
	}
}
