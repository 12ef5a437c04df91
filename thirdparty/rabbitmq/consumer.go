package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AlertHandler processes one low-stock alert. A returned error requeues the message.
type AlertHandler func(ctx context.Context, msg LowStockAlertMessage) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler AlertHandler
}

func NewConsumer(host string, port int, user, password string, handler AlertHandler) (*Consumer, error) {
	conn, err := amqp091.Dial(dsn(host, port, user, password))
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
	}, nil
}

// ErrDeliveryClosed reports that the broker closed the delivery channel,
// usually because the connection dropped.
var ErrDeliveryClosed = errors.New("rabbitmq delivery channel closed")

// Start begins consuming in a background goroutine. It returns once the
// subscription is established. The returned channel yields ErrDeliveryClosed
// if the broker goes away and is closed without a value when ctx is done.
func (c *Consumer) Start(ctx context.Context) (<-chan error, error) {
	// one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		alertQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	done := make(chan error, 1)
	go func() {
		defer close(done)
		if err := c.consume(ctx, msgs); err != nil {
			done <- err
		}
	}()

	return done, nil
}

// consume drains msgs until ctx ends (nil) or the channel closes (ErrDeliveryClosed).
func (c *Consumer) consume(ctx context.Context, msgs <-chan amqp091.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				logger.Error("[Consumer] delivery channel closed")
				return ErrDeliveryClosed
			}
			c.handle(ctx, msg)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var alert LowStockAlertMessage
	if err := json.Unmarshal(msg.Body, &alert); err != nil {
		logger.Error("[Consumer] unmarshal alert", zap.String("error", err.Error()))
		// poison message, drop it
		_ = msg.Ack(false)
		return
	}

	if err := c.handler(ctx, alert); err != nil {
		logger.Error("[Consumer] handle alert", zap.Int("items", len(alert.Items)), zap.String("error", err.Error()))
		_ = msg.Nack(false, !msg.Redelivered)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] low stock alert delivered", zap.Int("items", len(alert.Items)))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
