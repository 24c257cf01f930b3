package notify

import (
	"context"

	"github.com/tcruz/budgetbuddy/internal/domain"
	"github.com/tcruz/budgetbuddy/internal/log"
)

// LogNotifier implements domain.Notifier by writing events to the
// structured log. This is the default sink when no AMQP URL is configured.
type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier creates a notifier that logs events
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.WithComponent("notify")}
}

// NotifyReward logs a point-grant event
func (n *LogNotifier) NotifyReward(_ context.Context, userID string, event domain.RewardEvent) error {
	n.logger.Info("reward granted",
		"user_id", userID,
		"kind", event.Kind,
		"points", event.PointDelta,
		"message", event.Message)
	return nil
}

// NotifyAlert logs a budget threshold alert
func (n *LogNotifier) NotifyAlert(_ context.Context, userID string, alert domain.BudgetAlert) error {
	n.logger.Warn("budget alert",
		"user_id", userID,
		"category", alert.Category,
		"severity", alert.Severity,
		"percentage", alert.Percentage.Round(0).String())
	return nil
}

// Interface guard
var _ domain.Notifier = (*LogNotifier)(nil)
