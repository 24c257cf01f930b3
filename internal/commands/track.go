package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tcruz/budgetbuddy/internal/domain"
	"github.com/tcruz/budgetbuddy/internal/importer"
)

func newTrackCommand(a *app) *cobra.Command {
	var (
		amount      string
		category    string
		description string
		date        string
		kind        string
	)

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Record a single income or expense transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedAmount, err := decimal.NewFromString(amount)
			if err != nil {
				return domain.NewValidationError("invalid amount: " + amount)
			}

			parsedDate := domain.NormalizeDate(time.Now())
			if date != "" {
				if parsedDate, err = domain.ParseDate(date); err != nil {
					return err
				}
			}

			tx, err := a.engine.TrackTransaction(cmd.Context(), domain.TransactionInput{
				Amount:      parsedAmount,
				Category:    category,
				Description: description,
				Date:        parsedDate,
				Kind:        domain.TransactionKind(kind),
			})
			if err = warnIfStale(cmd, err); err != nil {
				return err
			}

			cmd.Printf("Tracked %s of %s in %s (%s)\n", tx.Kind, tx.Amount.StringFixed(2), tx.Category, tx.ID)
			cmd.Printf("Buddy points: %d\n", a.engine.Points())
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "transaction amount (required, positive)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&category, "category", "Other", "category label")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&date, "date", "", "calendar date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&kind, "kind", string(domain.KindExpense), "income or expense")

	return cmd
}

func newImportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import transactions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			result, err := importer.ParseCSV(f, time.Now())
			if err != nil {
				return err
			}
			if len(result.Records) == 0 {
				return domain.NewValidationError("no valid transactions found in CSV file")
			}

			imported, err := a.engine.ImportTransactions(cmd.Context(), result.Records)
			if err = warnIfStale(cmd, err); err != nil {
				return err
			}

			cmd.Printf("Imported %d transactions (%d rows skipped)\n", len(imported), result.Skipped)
			cmd.Printf("Buddy points: %d\n", a.engine.Points())
			return nil
		},
	}

	return cmd
}
