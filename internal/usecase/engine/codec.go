package engine

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

// Persisted blob shapes. Kept separate from the domain structs so the stored
// format stays stable if the domain layer evolves. Field names match the
// record shape handed around by external collaborators (amount, category,
// description, date, type).

type storedTransaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Kind        string          `json:"type"`
}

type storedBudget struct {
	Category  string          `json:"category"`
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
}

type storedGoal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      string          `json:"deadline"`
	Category      string          `json:"category"`
	IsCompleted   bool            `json:"isCompleted"`
}

type storedPoints struct {
	Balance int `json:"balance"`
}

func encodeTransactions(transactions []domain.Transaction) ([]byte, error) {
	stored := make([]storedTransaction, len(transactions))
	for i, tx := range transactions {
		stored[i] = storedTransaction{
			ID:          tx.ID.String(),
			Amount:      tx.Amount,
			Category:    tx.Category,
			Description: tx.Description,
			Date:        tx.Date.Format(domain.DateFormat),
			Kind:        string(tx.Kind),
		}
	}
	return json.Marshal(stored)
}

func decodeTransactions(blob []byte) ([]domain.Transaction, error) {
	var stored []storedTransaction
	if err := json.Unmarshal(blob, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode transactions blob: %w", err)
	}

	transactions := make([]domain.Transaction, len(stored))
	for i, s := range stored {
		id, err := uuid.Parse(s.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction id %q: %w", s.ID, err)
		}
		date, err := domain.ParseDate(s.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction date %q: %w", s.Date, err)
		}
		transactions[i] = domain.Transaction{
			ID:          id,
			Amount:      s.Amount,
			Category:    s.Category,
			Description: s.Description,
			Date:        date,
			Kind:        domain.TransactionKind(s.Kind),
		}
	}
	return transactions, nil
}

func encodeBudgets(allocations []domain.BudgetAllocation) ([]byte, error) {
	stored := make([]storedBudget, len(allocations))
	for i, alloc := range allocations {
		stored[i] = storedBudget{
			Category:  alloc.Category,
			Allocated: alloc.Allocated,
			Spent:     alloc.Spent,
		}
	}
	return json.Marshal(stored)
}

func decodeBudgets(blob []byte) ([]domain.BudgetAllocation, error) {
	var stored []storedBudget
	if err := json.Unmarshal(blob, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode budgets blob: %w", err)
	}

	allocations := make([]domain.BudgetAllocation, len(stored))
	for i, s := range stored {
		allocations[i] = domain.BudgetAllocation{
			Category:  s.Category,
			Allocated: s.Allocated,
			Spent:     s.Spent,
		}
	}
	return allocations, nil
}

func encodeGoals(goals []domain.Goal) ([]byte, error) {
	stored := make([]storedGoal, len(goals))
	for i, g := range goals {
		stored[i] = storedGoal{
			ID:            g.ID.String(),
			Title:         g.Title,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Deadline:      g.Deadline.Format(domain.DateFormat),
			Category:      g.Category,
			IsCompleted:   g.IsCompleted,
		}
	}
	return json.Marshal(stored)
}

func decodeGoals(blob []byte) ([]domain.Goal, error) {
	var stored []storedGoal
	if err := json.Unmarshal(blob, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode goals blob: %w", err)
	}

	goals := make([]domain.Goal, len(stored))
	for i, s := range stored {
		id, err := uuid.Parse(s.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse goal id %q: %w", s.ID, err)
		}
		deadline, err := domain.ParseDate(s.Deadline)
		if err != nil {
			return nil, fmt.Errorf("failed to parse goal deadline %q: %w", s.Deadline, err)
		}
		goals[i] = domain.Goal{
			ID:            id,
			Title:         s.Title,
			TargetAmount:  s.TargetAmount,
			CurrentAmount: s.CurrentAmount,
			Deadline:      deadline,
			Category:      s.Category,
			IsCompleted:   s.IsCompleted,
		}
	}
	return goals, nil
}

func encodePoints(balance int) ([]byte, error) {
	return json.Marshal(storedPoints{Balance: balance})
}

func decodePoints(blob []byte) (int, error) {
	var stored storedPoints
	if err := json.Unmarshal(blob, &stored); err != nil {
		return 0, fmt.Errorf("failed to decode points blob: %w", err)
	}
	return stored.Balance, nil
}
