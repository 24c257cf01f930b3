package reward

import (
	"fmt"

	"github.com/tcruz/budgetbuddy/internal/domain"
	"github.com/tcruz/budgetbuddy/internal/usecase/goal"
)

// Point values of the reward rule table. Evaluated synchronously as part of
// the same operation that produced the outcome.
const (
	PointsExpenseTracked = 5
	PointsImported       = 20
	PointsGoalCreated    = 10
	PointsGoalFunded     = 15
	PointsGoalCompleted  = 50
)

// ForTransaction maps a single appended transaction to a reward event.
// Only expense-kind transactions grant points.
func ForTransaction(tx domain.Transaction) (domain.RewardEvent, bool) {
	if tx.Kind != domain.KindExpense {
		return domain.RewardEvent{}, false
	}
	return domain.RewardEvent{
		Kind:       domain.RewardExpenseTracked,
		PointDelta: PointsExpenseTracked,
		Message:    "tracked an expense",
	}, true
}

// ForImport maps a completed batch import to a reward event.
// An empty batch grants nothing.
func ForImport(batchSize int) (domain.RewardEvent, bool) {
	if batchSize <= 0 {
		return domain.RewardEvent{}, false
	}
	return domain.RewardEvent{
		Kind:       domain.RewardImported,
		PointDelta: PointsImported,
		Message:    fmt.Sprintf("imported %d transactions", batchSize),
	}, true
}

// ForGoalCreated maps goal creation to its reward event (always granted)
func ForGoalCreated() domain.RewardEvent {
	return domain.RewardEvent{
		Kind:       domain.RewardGoalCreated,
		PointDelta: PointsGoalCreated,
		Message:    "set a new goal",
	}
}

// ForFunding maps a goal-funding outcome to a reward event. The completion
// grant supersedes the funding grant; at most one event per Fund call.
func ForFunding(outcome goal.Outcome) (domain.RewardEvent, bool) {
	switch outcome {
	case goal.OutcomeCompleted:
		return domain.RewardEvent{
			Kind:       domain.RewardGoalCompleted,
			PointDelta: PointsGoalCompleted,
			Message:    "completed a goal",
		}, true
	case goal.OutcomeFunded:
		return domain.RewardEvent{
			Kind:       domain.RewardGoalFunded,
			PointDelta: PointsGoalFunded,
			Message:    "added to savings",
		}, true
	default:
		return domain.RewardEvent{}, false
	}
}
