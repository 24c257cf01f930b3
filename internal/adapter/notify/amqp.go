package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

// AMQPNotifier implements domain.Notifier by publishing events to a direct
// exchange, for consumers that render notifications out of process.
type AMQPNotifier struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

// rewardMessage is the wire shape of a published reward event
type rewardMessage struct {
	UserID     string `json:"user_id"`
	Kind       string `json:"kind"`
	PointDelta int    `json:"point_delta"`
	Message    string `json:"message"`
	OccurredAt string `json:"occurred_at"`
}

// alertMessage is the wire shape of a published budget alert
type alertMessage struct {
	UserID     string `json:"user_id"`
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	Percentage string `json:"percentage"`
	Message    string `json:"message"`
	OccurredAt string `json:"occurred_at"`
}

// NewAMQPNotifier dials the broker and declares the exchange, queue, and
// binding used for notification delivery.
func NewAMQPNotifier(url, exchangeName, queueName string) (*AMQPNotifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	n := &AMQPNotifier{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := n.setup(); err != nil {
		n.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return n, nil
}

func (n *AMQPNotifier) setup() error {
	err := n.channel.ExchangeDeclare(
		n.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = n.channel.QueueDeclare(
		n.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = n.channel.QueueBind(
		n.queueName,    // queue name
		n.queueName,    // routing key (same as queue name for direct exchange)
		n.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// NotifyReward publishes a point-grant event
func (n *AMQPNotifier) NotifyReward(ctx context.Context, userID string, event domain.RewardEvent) error {
	msg := rewardMessage{
		UserID:     userID,
		Kind:       string(event.Kind),
		PointDelta: event.PointDelta,
		Message:    event.Message,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	return n.publish(ctx, msg)
}

// NotifyAlert publishes a budget threshold alert
func (n *AMQPNotifier) NotifyAlert(ctx context.Context, userID string, alert domain.BudgetAlert) error {
	msg := alertMessage{
		UserID:     userID,
		Category:   alert.Category,
		Severity:   string(alert.Severity),
		Percentage: alert.Percentage.Round(0).String(),
		Message:    alert.Message,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	return n.publish(ctx, msg)
}

func (n *AMQPNotifier) publish(ctx context.Context, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = n.channel.PublishWithContext(
		ctx,
		n.exchangeName, // exchange
		n.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	return nil
}

// Close closes the channel and connection
func (n *AMQPNotifier) Close() error {
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

// Interface guard
var _ domain.Notifier = (*AMQPNotifier)(nil)
