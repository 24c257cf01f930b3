package domain

import (
	"github.com/shopspring/decimal"
)

// RewardKind identifies which reward rule produced an event.
// This is a closed set: the rule table in the reward engine is the only
// producer.
type RewardKind string

const (
	RewardExpenseTracked RewardKind = "EXPENSE_TRACKED"
	RewardImported       RewardKind = "IMPORTED"
	RewardGoalCreated    RewardKind = "GOAL_CREATED"
	RewardGoalFunded     RewardKind = "GOAL_FUNDED"
	RewardGoalCompleted  RewardKind = "GOAL_COMPLETED"
)

// RewardEvent is an ephemeral point-grant notification. It is produced by
// the reward engine, handed to the notification sink, and discarded; it is
// never persisted.
type RewardEvent struct {
	Kind       RewardKind
	PointDelta int // may be negative in principle; current rules only grant
	Message    string
}

// AlertSeverity represents how close a category is to exhausting its budget
type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "WARNING"  // 75% <= spent/allocated < 90%
	SeverityCritical AlertSeverity = "CRITICAL" // spent/allocated >= 90%
)

// BudgetAlert is read-only telemetry produced by the alert scan. It carries
// no point delta and has no effect on persisted state.
type BudgetAlert struct {
	Category   string
	Severity   AlertSeverity
	Percentage decimal.Decimal // spent/allocated * 100
	Message    string
}
