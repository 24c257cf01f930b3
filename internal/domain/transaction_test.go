package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionInput_Validate(t *testing.T) {
	validDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   TransactionInput
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid expense should pass",
			input: TransactionInput{
				Amount:      decimal.NewFromInt(50),
				Category:    "Food & Dining",
				Description: "Weekly groceries",
				Date:        validDate,
				Kind:        KindExpense,
			},
			wantErr: false,
		},
		{
			name: "valid income should pass",
			input: TransactionInput{
				Amount:      decimal.NewFromInt(2500),
				Category:    "Salary",
				Description: "August paycheck",
				Date:        validDate,
				Kind:        KindIncome,
			},
			wantErr: false,
		},
		{
			name: "zero amount should fail",
			input: TransactionInput{
				Amount: decimal.Zero,
				Date:   validDate,
				Kind:   KindExpense,
			},
			wantErr: true,
			errMsg:  "transaction amount must be positive",
		},
		{
			name: "negative amount should fail",
			input: TransactionInput{
				Amount: decimal.NewFromInt(-10),
				Date:   validDate,
				Kind:   KindExpense,
			},
			wantErr: true,
			errMsg:  "transaction amount must be positive",
		},
		{
			name: "unknown kind should fail",
			input: TransactionInput{
				Amount: decimal.NewFromInt(10),
				Date:   validDate,
				Kind:   "transfer",
			},
			wantErr: true,
			errMsg:  "transaction kind must be income or expense",
		},
		{
			name: "zero date should fail",
			input: TransactionInput{
				Amount: decimal.NewFromInt(10),
				Kind:   KindExpense,
			},
			wantErr: true,
			errMsg:  "transaction date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.True(t, IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionInput_Materialize(t *testing.T) {
	input := TransactionInput{
		Amount:      decimal.NewFromFloat(12.50),
		Category:    "Food & Dining",
		Description: "Lunch",
		Date:        time.Date(2026, 8, 15, 13, 45, 12, 0, time.Local),
		Kind:        KindExpense,
	}

	tx, err := input.Materialize()

	assert.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", tx.ID.String())
	assert.True(t, decimal.NewFromFloat(12.50).Equal(tx.Amount))
	assert.Equal(t, "Food & Dining", tx.Category)
	assert.Equal(t, KindExpense, tx.Kind)

	// Time-of-day is stripped: only the calendar date survives
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), tx.Date)
}

func TestTransactionInput_Materialize_GeneratesUniqueIDs(t *testing.T) {
	input := TransactionInput{
		Amount: decimal.NewFromInt(5),
		Date:   time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Kind:   KindExpense,
	}

	first, err := input.Materialize()
	assert.NoError(t, err)
	second, err := input.Materialize()
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("15/08/2026")
	assert.Error(t, err)
	assert.True(t, IsValidation(err))
}
