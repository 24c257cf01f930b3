package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

// Outcome tags which reward case a funding call triggered, so the
// caller-observable side effect (point grant) stays decoupled from the pure
// state update.
type Outcome string

const (
	// OutcomeNone: no reward applies (withdrawal, or no-op deposit)
	OutcomeNone Outcome = "NONE"
	// OutcomeFunded: currentAmount increased without reaching the target
	OutcomeFunded Outcome = "FUNDED"
	// OutcomeCompleted: isCompleted transitioned false -> true this call.
	// Supersedes OutcomeFunded; at most one outcome per Fund call.
	OutcomeCompleted Outcome = "COMPLETED"
)

// Ledger owns goal funding, defunding, and completion transitions. Like the
// transaction log it mutates copy-on-write and relies on its host to
// serialize calls per user.
type Ledger struct {
	goals []domain.Goal
}

// NewLedger creates a ledger seeded with previously-persisted goals
func NewLedger(existing []domain.Goal) *Ledger {
	goals := make([]domain.Goal, len(existing))
	copy(goals, existing)
	return &Ledger{goals: goals}
}

// Create adds a new goal with currentAmount = 0 and isCompleted = false.
// New goals are inserted at the head of the set (most-recent-first).
// Returns a ValidationError on empty title or non-positive target.
func (l *Ledger) Create(title string, targetAmount decimal.Decimal, deadline time.Time, category string) (domain.Goal, error) {
	g := domain.Goal{
		ID:            uuid.New(),
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      domain.NormalizeDate(deadline),
		Category:      category,
		IsCompleted:   false,
	}

	if err := g.Validate(); err != nil {
		return domain.Goal{}, err
	}

	next := make([]domain.Goal, 0, len(l.goals)+1)
	next = append(next, g)
	next = append(next, l.goals...)
	l.goals = next

	return g, nil
}

// Fund deposits (delta > 0) or withdraws (delta < 0) against a goal.
// The resulting amount is clamped to [0, targetAmount]: funding past the
// target silently caps at the target, withdrawing past zero floors at zero.
// Completion is sticky: once isCompleted is true, a later withdrawal never
// reverts it.
// Returns the updated goal and the reward-case outcome; ErrNotFound if the
// goal does not exist.
func (l *Ledger) Fund(goalID uuid.UUID, delta decimal.Decimal) (domain.Goal, Outcome, error) {
	idx := l.indexOf(goalID)
	if idx < 0 {
		return domain.Goal{}, OutcomeNone, domain.ErrNotFound
	}

	g := l.goals[idx]
	newAmount := clamp(g.CurrentAmount.Add(delta), decimal.Zero, g.TargetAmount)

	wasCompleted := g.IsCompleted
	nowCompleted := wasCompleted || newAmount.GreaterThanOrEqual(g.TargetAmount)

	outcome := OutcomeNone
	switch {
	case !wasCompleted && nowCompleted:
		outcome = OutcomeCompleted
	case delta.IsPositive() && newAmount.GreaterThan(g.CurrentAmount):
		outcome = OutcomeFunded
	}

	g.CurrentAmount = newAmount
	g.IsCompleted = nowCompleted

	next := make([]domain.Goal, len(l.goals))
	copy(next, l.goals)
	next[idx] = g
	l.goals = next

	return g, outcome, nil
}

// Delete removes a goal. Completed goals cannot be deleted: keeping them
// prevents the completion grant from being farmed by create/fund/delete
// loops. Returns ErrNotFound or ErrPreconditionFailed accordingly.
func (l *Ledger) Delete(goalID uuid.UUID) error {
	idx := l.indexOf(goalID)
	if idx < 0 {
		return domain.ErrNotFound
	}

	if l.goals[idx].IsCompleted {
		return domain.ErrPreconditionFailed
	}

	next := make([]domain.Goal, 0, len(l.goals)-1)
	next = append(next, l.goals[:idx]...)
	next = append(next, l.goals[idx+1:]...)
	l.goals = next

	return nil
}

// Get retrieves a goal by id; ErrNotFound if absent.
func (l *Ledger) Get(goalID uuid.UUID) (domain.Goal, error) {
	idx := l.indexOf(goalID)
	if idx < 0 {
		return domain.Goal{}, domain.ErrNotFound
	}
	return l.goals[idx], nil
}

// All returns a copy of the goal set, most recently created first
func (l *Ledger) All() []domain.Goal {
	out := make([]domain.Goal, len(l.goals))
	copy(out, l.goals)
	return out
}

func (l *Ledger) indexOf(goalID uuid.UUID) int {
	for i := range l.goals {
		if l.goals[i].ID == goalID {
			return i
		}
	}
	return -1
}

func clamp(v, min, max decimal.Decimal) decimal.Decimal {
	if v.LessThan(min) {
		return min
	}
	if v.GreaterThan(max) {
		return max
	}
	return v
}
