package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

// CSV bulk-import producer. This is the external collaborator that hands
// the engine already-validated transaction records; the engine itself never
// parses raw file formats.
//
// The expected file has a header row naming some of: amount, description,
// category, date, type. Rows missing an amount or description are skipped.
// The sign of the amount determines the kind (negative = expense, positive
// = income) unless an explicit type column says otherwise; the stored
// amount is always the absolute value.

const defaultCategory = "Other"

// Result holds the parsed records plus how many rows were skipped
type Result struct {
	Records []domain.TransactionInput
	Skipped int
}

// ParseCSV reads transaction records from a CSV stream.
// today supplies the date for rows with no (or an unparseable) date column.
func ParseCSV(r io.Reader, today time.Time) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are tolerated, missing cells skip the row
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("reading import CSV: %w", err)
	}
	if len(rows) == 0 {
		return Result{}, nil
	}

	cols := columnIndex(rows[0])
	if _, ok := cols["amount"]; !ok {
		return Result{}, domain.NewValidationError("import CSV has no amount column")
	}
	if _, ok := cols["description"]; !ok {
		return Result{}, domain.NewValidationError("import CSV has no description column")
	}

	var result Result
	for _, row := range rows[1:] {
		record, ok := parseRow(row, cols, today)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func parseRow(row []string, cols map[string]int, today time.Time) (domain.TransactionInput, bool) {
	amountRaw := cell(row, cols, "amount")
	description := cell(row, cols, "description")
	if amountRaw == "" || description == "" {
		return domain.TransactionInput{}, false
	}

	amount, err := decimal.NewFromString(amountRaw)
	if err != nil || amount.IsZero() {
		return domain.TransactionInput{}, false
	}

	kind := domain.KindIncome
	if amount.IsNegative() {
		kind = domain.KindExpense
	}
	switch strings.ToLower(cell(row, cols, "type")) {
	case "income":
		kind = domain.KindIncome
	case "expense":
		kind = domain.KindExpense
	}

	category := cell(row, cols, "category")
	if category == "" {
		category = defaultCategory
	}

	date := domain.NormalizeDate(today)
	if raw := cell(row, cols, "date"); raw != "" {
		if parsed, err := domain.ParseDate(raw); err == nil {
			date = parsed
		}
	}

	return domain.TransactionInput{
		Amount:      amount.Abs(),
		Category:    category,
		Description: description,
		Date:        date,
		Kind:        kind,
	}, true
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
