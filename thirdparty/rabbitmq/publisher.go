package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/muhammadheryan/storefront/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	alertExchange   = "inventory_alert_exchange"
	alertQueue      = "low_stock_alert_queue"
	alertRoutingKey = "low_stock"
)

var ErrNotConnected = errors.New("rabbitmq publisher not connected")

// LowStockAlertMessage carries the items that crossed into LOW or OUT.
type LowStockAlertMessage struct {
	Items     []model.LowStockItem `json:"items"`
	Source    string               `json:"source"`
	CreatedAt time.Time            `json:"created_at"`
}

// AlertPublisher is what the inventory use-cases depend on.
type AlertPublisher interface {
	PublishLowStockAlert(ctx context.Context, msg LowStockAlertMessage) error
}

type Publisher struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dsn(host string, port int, user, password string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
}

// declareTopology sets up the durable direct exchange and queue used by
// both sides, so either process can start first.
func declareTopology(channel *amqp091.Channel) error {
	if err := channel.ExchangeDeclare(
		alertExchange, // name
		"direct",      // type
		true,          // durable
		false,         // auto-delete
		false,         // internal
		false,         // no-wait
		nil,           // arguments
	); err != nil {
		return err
	}
	if _, err := channel.QueueDeclare(
		alertQueue, // name
		true,       // durable
		false,      // auto-delete
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	); err != nil {
		return err
	}
	return channel.QueueBind(alertQueue, alertRoutingKey, alertExchange, false, nil)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
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

	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishLowStockAlert(ctx context.Context, msg LowStockAlertMessage) error {
	if p == nil || p.channel == nil {
		return ErrNotConnected
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		alertExchange,   // exchange
		alertRoutingKey, // routing key
		false,           // mandatory
		false,           // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.CreatedAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
