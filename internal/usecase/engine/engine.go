package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/tcruz/budgetbuddy/internal/domain"
	"github.com/tcruz/budgetbuddy/internal/log"
	"github.com/tcruz/budgetbuddy/internal/usecase/budget"
	"github.com/tcruz/budgetbuddy/internal/usecase/goal"
	"github.com/tcruz/budgetbuddy/internal/usecase/ledger"
	"github.com/tcruz/budgetbuddy/internal/usecase/reward"
)

// Engine is the single entry point composing the transaction log, budget
// aggregator, goal ledger, and reward engine for one user. It guarantees
// the ordering of recomputation vs. event emission:
//
//	mutate -> recompute budgets -> evaluate reward rules -> apply points
//	       -> persist -> notify
//
// so budget spend is never stale relative to the log the caller just wrote.
//
// The engine is not thread-safe by contract; its host must serialize calls
// per user (single event loop or an external lock per user id).
type Engine struct {
	userID   string
	store    domain.BlobStore
	notifier domain.Notifier
	logger   *log.Logger

	transactions *ledger.Log
	allocations  []domain.BudgetAllocation
	goals        *goal.Ledger
	points       int
}

// New constructs an engine for the given user, loading all collections from
// the backing store. A user with no stored budgets starts from the seeded
// allocation set; stored allocations win over the seed. Budget spend is
// recomputed from the loaded log, so a stale durable copy self-heals.
func New(ctx context.Context, userID string, store domain.BlobStore, notifier domain.Notifier, seed []domain.BudgetAllocation, logger *log.Logger) (*Engine, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user id is required")
	}
	for _, alloc := range seed {
		if err := alloc.Validate(); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		userID:   userID,
		store:    store,
		notifier: notifier,
		logger:   logger.WithComponent("engine"),
	}

	if err := e.load(ctx, seed); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Engine) load(ctx context.Context, seed []domain.BudgetAllocation) error {
	txBlob, err := e.store.Load(ctx, e.userID, domain.KeyTransactions)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	var transactions []domain.Transaction
	if txBlob != nil {
		if transactions, err = decodeTransactions(txBlob); err != nil {
			return err
		}
	}
	e.transactions = ledger.NewLog(transactions)

	budgetBlob, err := e.store.Load(ctx, e.userID, domain.KeyBudgets)
	if err != nil {
		return fmt.Errorf("failed to load budgets: %w", err)
	}
	allocations := seed
	if budgetBlob != nil {
		if allocations, err = decodeBudgets(budgetBlob); err != nil {
			return err
		}
	}
	e.allocations = budget.Recompute(e.transactions.All(), allocations)

	goalBlob, err := e.store.Load(ctx, e.userID, domain.KeyGoals)
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	var goals []domain.Goal
	if goalBlob != nil {
		if goals, err = decodeGoals(goalBlob); err != nil {
			return err
		}
	}
	e.goals = goal.NewLedger(goals)

	pointsBlob, err := e.store.Load(ctx, e.userID, domain.KeyPoints)
	if err != nil {
		return fmt.Errorf("failed to load points: %w", err)
	}
	if pointsBlob != nil {
		if e.points, err = decodePoints(pointsBlob); err != nil {
			return err
		}
	}

	return nil
}

// TrackTransaction appends a single transaction to the log, recomputes
// budget spend, and grants the expense-tracking reward when applicable.
// On a save failure the returned transaction is still valid and in effect;
// the error carries a PersistenceWarning (check domain.IsPersistenceWarning).
func (e *Engine) TrackTransaction(ctx context.Context, input domain.TransactionInput) (domain.Transaction, error) {
	tx, err := e.transactions.Append(input)
	if err != nil {
		return domain.Transaction{}, err
	}

	e.allocations = budget.Recompute(e.transactions.All(), e.allocations)

	keys := []string{domain.KeyTransactions, domain.KeyBudgets}
	event, granted := reward.ForTransaction(tx)
	if granted {
		e.applyPoints(event.PointDelta)
		keys = append(keys, domain.KeyPoints)
	}

	warn := e.persist(ctx, keys...)
	if granted {
		e.notifyReward(ctx, event)
	}

	e.logger.Debug("transaction tracked", "id", tx.ID, "kind", tx.Kind, "amount", tx.Amount)
	return tx, warn
}

// ImportTransactions appends a batch of already-validated records as a
// single atomic mutation and grants the import reward for a non-empty
// batch. An empty batch is a no-op: no log change, no reward, no save.
// Returns the fully-populated records in input order.
func (e *Engine) ImportTransactions(ctx context.Context, inputs []domain.TransactionInput) ([]domain.Transaction, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	block, err := e.transactions.AppendBatch(inputs)
	if err != nil {
		return nil, err
	}

	e.allocations = budget.Recompute(e.transactions.All(), e.allocations)

	keys := []string{domain.KeyTransactions, domain.KeyBudgets}
	event, granted := reward.ForImport(len(block))
	if granted {
		e.applyPoints(event.PointDelta)
		keys = append(keys, domain.KeyPoints)
	}

	warn := e.persist(ctx, keys...)
	if granted {
		e.notifyReward(ctx, event)
	}

	e.logger.Info("transactions imported", "count", len(block))
	return block, warn
}

// SetBudget replaces the allocated ceiling for a category. The category set
// is fixed and pre-seeded: an unknown category is a no-op. amount must be
// non-negative.
func (e *Engine) SetBudget(ctx context.Context, category string, amount decimal.Decimal) ([]domain.BudgetAllocation, error) {
	allocations, err := budget.SetAllocated(e.allocations, category, amount)
	if err != nil {
		return nil, err
	}
	e.allocations = allocations

	warn := e.persist(ctx, domain.KeyBudgets)
	return e.Budgets(), warn
}

// CreateGoal adds a new savings goal and grants the goal-created reward
func (e *Engine) CreateGoal(ctx context.Context, title string, targetAmount decimal.Decimal, deadline time.Time, category string) (domain.Goal, error) {
	g, err := e.goals.Create(title, targetAmount, deadline, category)
	if err != nil {
		return domain.Goal{}, err
	}

	event := reward.ForGoalCreated()
	e.applyPoints(event.PointDelta)

	warn := e.persist(ctx, domain.KeyGoals, domain.KeyPoints)
	e.notifyReward(ctx, event)

	e.logger.Debug("goal created", "id", g.ID, "title", g.Title)
	return g, warn
}

// FundGoal deposits (delta > 0) or withdraws (delta < 0) against a goal and
// grants the funding or completion reward per the rule table (at most one
// event per call). Returns ErrNotFound if the goal does not exist.
func (e *Engine) FundGoal(ctx context.Context, goalID uuid.UUID, delta decimal.Decimal) (domain.Goal, error) {
	g, outcome, err := e.goals.Fund(goalID, delta)
	if err != nil {
		return domain.Goal{}, err
	}

	keys := []string{domain.KeyGoals}
	event, granted := reward.ForFunding(outcome)
	if granted {
		e.applyPoints(event.PointDelta)
		keys = append(keys, domain.KeyPoints)
	}

	warn := e.persist(ctx, keys...)
	if granted {
		e.notifyReward(ctx, event)
	}

	return g, warn
}

// DeleteGoal removes an active goal. Completed goals cannot be deleted
// (ErrPreconditionFailed); an unknown goal returns ErrNotFound.
func (e *Engine) DeleteGoal(ctx context.Context, goalID uuid.UUID) error {
	if err := e.goals.Delete(goalID); err != nil {
		return err
	}
	return e.persist(ctx, domain.KeyGoals)
}

// BudgetAlerts runs the pull-style alert scan over the current allocations
// and forwards each alert to the notification sink. Read-only: no point
// grants, no persisted state.
func (e *Engine) BudgetAlerts(ctx context.Context) []domain.BudgetAlert {
	alerts := reward.ScanBudgets(e.allocations)
	for _, alert := range alerts {
		if err := e.notifier.NotifyAlert(ctx, e.userID, alert); err != nil {
			e.logger.Warn("failed to deliver budget alert", "category", alert.Category, "error", err)
		}
	}
	return alerts
}

// Transactions returns the full ordered log, most-recent-first
func (e *Engine) Transactions() []domain.Transaction {
	return e.transactions.All()
}

// Budgets returns the current allocation set with derived spend
func (e *Engine) Budgets() []domain.BudgetAllocation {
	out := make([]domain.BudgetAllocation, len(e.allocations))
	copy(out, e.allocations)
	return out
}

// Goals returns the goal set, most recently created first
func (e *Engine) Goals() []domain.Goal {
	return e.goals.All()
}

// Points returns the user's current point balance
func (e *Engine) Points() int {
	return e.points
}

// Flush saves all four collections, one goroutine per blob key. Used to
// retry after a PersistenceWarning and on shutdown.
func (e *Engine) Flush(ctx context.Context) error {
	blobs := map[string][]byte{}
	for _, key := range []string{domain.KeyTransactions, domain.KeyBudgets, domain.KeyGoals, domain.KeyPoints} {
		blob, err := e.encode(key)
		if err != nil {
			return err
		}
		blobs[key] = blob
	}

	g, ctx := errgroup.WithContext(ctx)
	for key, blob := range blobs {
		key, blob := key, blob
		g.Go(func() error {
			if err := e.store.Save(ctx, e.userID, key, blob); err != nil {
				return &domain.PersistenceWarning{Key: key, Err: err}
			}
			return nil
		})
	}
	return g.Wait()
}

// applyPoints adjusts the point balance, flooring at zero. The current rule
// table only grants, so the floor is a guard, not a path.
func (e *Engine) applyPoints(delta int) {
	e.points += delta
	if e.points < 0 {
		e.points = 0
	}
}

func (e *Engine) encode(key string) ([]byte, error) {
	switch key {
	case domain.KeyTransactions:
		return encodeTransactions(e.transactions.All())
	case domain.KeyBudgets:
		return encodeBudgets(e.allocations)
	case domain.KeyGoals:
		return encodeGoals(e.goals.All())
	case domain.KeyPoints:
		return encodePoints(e.points)
	default:
		return nil, fmt.Errorf("unknown blob key %q", key)
	}
}

// persist saves each named collection under its fixed key. A failed save
// does NOT roll back the in-memory mutation: the first failure is returned
// as a PersistenceWarning and the remaining keys are still attempted, so
// state and durable copy may diverge until the next successful save.
func (e *Engine) persist(ctx context.Context, keys ...string) error {
	var warn error
	for _, key := range keys {
		blob, err := e.encode(key)
		if err != nil {
			return err
		}
		if err := e.store.Save(ctx, e.userID, key, blob); err != nil {
			e.logger.Warn("save failed, in-memory state retained", "key", key, "error", err)
			if warn == nil {
				warn = &domain.PersistenceWarning{Key: key, Err: err}
			}
		}
	}
	return warn
}

func (e *Engine) notifyReward(ctx context.Context, event domain.RewardEvent) {
	if err := e.notifier.NotifyReward(ctx, e.userID, event); err != nil {
		e.logger.Warn("failed to deliver reward event", "kind", event.Kind, "error", err)
	}
}
