package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

func expenseInput(amount int64, category string) domain.TransactionInput {
	return domain.TransactionInput{
		Amount:      decimal.NewFromInt(amount),
		Category:    category,
		Description: "test expense",
		Date:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Kind:        domain.KindExpense,
	}
}

func TestLog_Append_InsertsAtHead(t *testing.T) {
	l := NewLog(nil)

	first, err := l.Append(expenseInput(10, "Food & Dining"))
	assert.NoError(t, err)
	second, err := l.Append(expenseInput(20, "Shopping"))
	assert.NoError(t, err)

	all := l.All()
	assert.Equal(t, 2, len(all))
	assert.Equal(t, second.ID, all[0].ID, "most recent first")
	assert.Equal(t, first.ID, all[1].ID)
}

func TestLog_Append_RejectsInvalidInput(t *testing.T) {
	l := NewLog(nil)

	_, err := l.Append(domain.TransactionInput{
		Amount: decimal.Zero,
		Date:   time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Kind:   domain.KindExpense,
	})

	assert.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, 0, l.Len(), "log untouched on rejection")
}

func TestLog_AppendBatch_ContiguousBlockAtHead(t *testing.T) {
	l := NewLog(nil)

	older, err := l.Append(expenseInput(5, "Healthcare"))
	assert.NoError(t, err)

	block, err := l.AppendBatch([]domain.TransactionInput{
		expenseInput(10, "Food & Dining"),
		expenseInput(20, "Shopping"),
		expenseInput(30, "Entertainment"),
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, len(block))

	// Returned in input order
	assert.True(t, decimal.NewFromInt(10).Equal(block[0].Amount))
	assert.True(t, decimal.NewFromInt(30).Equal(block[2].Amount))

	// Inserted as a contiguous block at the head, input order preserved
	all := l.All()
	assert.Equal(t, 4, len(all))
	assert.Equal(t, block[0].ID, all[0].ID)
	assert.Equal(t, block[1].ID, all[1].ID)
	assert.Equal(t, block[2].ID, all[2].ID)
	assert.Equal(t, older.ID, all[3].ID)
}

func TestLog_AppendBatch_AllOrNone(t *testing.T) {
	l := NewLog(nil)

	_, err := l.AppendBatch([]domain.TransactionInput{
		expenseInput(10, "Food & Dining"),
		{Amount: decimal.NewFromInt(-5), Date: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), Kind: domain.KindExpense},
		expenseInput(30, "Entertainment"),
	})

	assert.Error(t, err)
	assert.Equal(t, 0, l.Len(), "a failing record leaves the whole batch unapplied")
}

func TestLog_AppendBatch_EmptyIsNoOp(t *testing.T) {
	l := NewLog(nil)

	block, err := l.AppendBatch(nil)

	assert.NoError(t, err)
	assert.Nil(t, block)
	assert.Equal(t, 0, l.Len())
}

func TestLog_All_ReturnsCopy(t *testing.T) {
	l := NewLog(nil)
	_, err := l.Append(expenseInput(10, "Food & Dining"))
	assert.NoError(t, err)

	all := l.All()
	all[0].Category = "Tampered"

	assert.Equal(t, "Food & Dining", l.All()[0].Category)
}

func TestLog_NewLog_PreservesStoredOrder(t *testing.T) {
	seedLog := NewLog(nil)
	a, _ := seedLog.Append(expenseInput(1, "Food & Dining"))
	b, _ := seedLog.Append(expenseInput(2, "Shopping"))

	restored := NewLog(seedLog.All())

	all := restored.All()
	assert.Equal(t, b.ID, all[0].ID)
	assert.Equal(t, a.ID, all[1].ID)
}
