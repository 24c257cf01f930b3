package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

var today = time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

func TestParseCSV_StandardFile(t *testing.T) {
	file := strings.Join([]string{
		"date,description,amount,category",
		"2026-08-01,Groceries,-52.30,Food & Dining",
		"2026-08-02,Salary,2500,",
		"2026-08-03,Bus pass,-45,Transportation",
	}, "\n")

	result, err := ParseCSV(strings.NewReader(file), today)

	assert.NoError(t, err)
	assert.Equal(t, 3, len(result.Records))
	assert.Equal(t, 0, result.Skipped)

	groceries := result.Records[0]
	assert.Equal(t, domain.KindExpense, groceries.Kind, "negative amounts are expenses")
	assert.True(t, decimal.NewFromFloat(52.30).Equal(groceries.Amount), "amounts are stored absolute")
	assert.Equal(t, "Food & Dining", groceries.Category)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), groceries.Date)

	salary := result.Records[1]
	assert.Equal(t, domain.KindIncome, salary.Kind)
	assert.Equal(t, "Other", salary.Category, "blank category falls back to Other")
}

func TestParseCSV_TypeColumnOverridesSign(t *testing.T) {
	file := strings.Join([]string{
		"description,amount,type",
		"Refund,25,expense",
		"Cashback,-10,income",
	}, "\n")

	result, err := ParseCSV(strings.NewReader(file), today)

	assert.NoError(t, err)
	assert.Equal(t, domain.KindExpense, result.Records[0].Kind)
	assert.Equal(t, domain.KindIncome, result.Records[1].Kind)
	assert.True(t, decimal.NewFromInt(10).Equal(result.Records[1].Amount))
}

func TestParseCSV_SkipsIncompleteRows(t *testing.T) {
	file := strings.Join([]string{
		"description,amount",
		"Coffee,-4.50",
		",-12",          // no description
		"Mystery,",      // no amount
		"Zero charge,0", // zero amount
		"Bad amount,abc",
	}, "\n")

	result, err := ParseCSV(strings.NewReader(file), today)

	assert.NoError(t, err)
	assert.Equal(t, 1, len(result.Records))
	assert.Equal(t, 4, result.Skipped)
	assert.Equal(t, "Coffee", result.Records[0].Description)
}

func TestParseCSV_MissingDateDefaultsToToday(t *testing.T) {
	file := "description,amount\nCoffee,-4.50\n"

	result, err := ParseCSV(strings.NewReader(file), today)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), result.Records[0].Date,
		"default date is today at midnight")
}

func TestParseCSV_UnparseableDateDefaultsToToday(t *testing.T) {
	file := "description,amount,date\nCoffee,-4.50,31/08/2026\n"

	result, err := ParseCSV(strings.NewReader(file), today)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), result.Records[0].Date)
}

func TestParseCSV_HeaderIsCaseInsensitive(t *testing.T) {
	file := "Description, Amount\nCoffee,-4.50\n"

	result, err := ParseCSV(strings.NewReader(file), today)

	assert.NoError(t, err)
	assert.Equal(t, 1, len(result.Records))
}

func TestParseCSV_MissingRequiredColumns(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("date,category\n2026-08-01,Food\n"), today)
	assert.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = ParseCSV(strings.NewReader("description,date\nCoffee,2026-08-01\n"), today)
	assert.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestParseCSV_EmptyFile(t *testing.T) {
	result, err := ParseCSV(strings.NewReader(""), today)

	assert.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.Skipped)
}

func TestParseCSV_RaggedRowsAreSkippedNotFatal(t *testing.T) {
	file := strings.Join([]string{
		"description,amount,category",
		"Coffee,-4.50,Food",
		"Short",
	}, "\n")

	result, err := ParseCSV(strings.NewReader(file), today)

	assert.NoError(t, err)
	assert.Equal(t, 1, len(result.Records))
	assert.Equal(t, 1, result.Skipped)
}
