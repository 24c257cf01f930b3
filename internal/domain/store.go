package domain

import (
	"context"
)

// Fixed blob keys under which the engine serializes its collections.
// Each collection is saved independently, namespaced by user id.
const (
	KeyTransactions = "transactions"
	KeyBudgets      = "budgets"
	KeyGoals        = "goals"
	KeyPoints       = "points"
)

// BlobStore defines the interface for the per-user key-value backing store.
// Any of a file, a database row, or a remote call can satisfy it without
// touching the engine's logic.
type BlobStore interface {
	// Load retrieves the blob stored under (userID, key).
	// A missing blob is not an error: Load returns (nil, nil).
	Load(ctx context.Context, userID, key string) ([]byte, error)

	// Save stores the blob under (userID, key), replacing any previous value
	Save(ctx context.Context, userID, key string, blob []byte) error
}

// Notifier defines the interface for the notification sink that receives
// reward and alert events for display. The engine has no UI responsibility.
type Notifier interface {
	// NotifyReward delivers a point-grant event
	NotifyReward(ctx context.Context, userID string, event RewardEvent) error

	// NotifyAlert delivers a budget threshold alert
	NotifyAlert(ctx context.Context, userID string, alert BudgetAlert) error
}
