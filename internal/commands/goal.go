package commands

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

func newGoalCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(newGoalAddCommand(a))
	cmd.AddCommand(newGoalFundCommand(a))
	cmd.AddCommand(newGoalDeleteCommand(a))
	cmd.AddCommand(newGoalListCommand(a))

	return cmd
}

func newGoalAddCommand(a *app) *cobra.Command {
	var (
		title    string
		target   string
		deadline string
		category string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new savings goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedTarget, err := decimal.NewFromString(target)
			if err != nil {
				return domain.NewValidationError("invalid target amount: " + target)
			}
			parsedDeadline, err := domain.ParseDate(deadline)
			if err != nil {
				return err
			}

			g, err := a.engine.CreateGoal(cmd.Context(), title, parsedTarget, parsedDeadline, category)
			if err = warnIfStale(cmd, err); err != nil {
				return err
			}

			cmd.Printf("Created goal %q targeting %s by %s (%s)\n",
				g.Title, g.TargetAmount.StringFixed(2), g.Deadline.Format(domain.DateFormat), g.ID)
			cmd.Printf("Buddy points: %d\n", a.engine.Points())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "goal title (required)")
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().StringVar(&target, "target", "", "target amount (required, positive)")
	_ = cmd.MarkFlagRequired("target")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("deadline")
	cmd.Flags().StringVar(&category, "category", "", "informational category label")

	return cmd
}

func newGoalFundCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fund <goal-id> <delta>",
		Short: "Deposit into (or withdraw from, with a negative delta) a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := uuid.Parse(args[0])
			if err != nil {
				return domain.NewValidationError("invalid goal id: " + args[0])
			}
			delta, err := decimal.NewFromString(args[1])
			if err != nil {
				return domain.NewValidationError("invalid delta: " + args[1])
			}

			g, err := a.engine.FundGoal(cmd.Context(), goalID, delta)
			if err = warnIfStale(cmd, err); err != nil {
				return err
			}

			status := "active"
			if g.IsCompleted {
				status = "completed"
			}
			cmd.Printf("Goal %q now at %s of %s (%s)\n",
				g.Title, g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2), status)
			cmd.Printf("Buddy points: %d\n", a.engine.Points())
			return nil
		},
	}
}

func newGoalDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <goal-id>",
		Short: "Delete an active goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID, err := uuid.Parse(args[0])
			if err != nil {
				return domain.NewValidationError("invalid goal id: " + args[0])
			}

			if err := warnIfStale(cmd, a.engine.DeleteGoal(cmd.Context(), goalID)); err != nil {
				return err
			}
			cmd.Println("Goal deleted")
			return nil
		},
	}
}

func newGoalListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all goals with funding progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, g := range a.engine.Goals() {
				status := " "
				if g.IsCompleted {
					status = "*"
				}
				cmd.Printf("%s %-25s %10s / %-10s due %s  %s\n",
					status, g.Title, g.CurrentAmount.StringFixed(2), g.TargetAmount.StringFixed(2),
					g.Deadline.Format(domain.DateFormat), g.ID)
			}
			return nil
		},
	}
}
