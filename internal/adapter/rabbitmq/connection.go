package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ConfirmationsExchange = "confirmations_direct"
	ConfirmationsQueue    = "sms_confirmations"
	ConfirmationsKey      = "sms"

	deadLetterExchange = "confirmations_dlx"
	deadLetterQueue    = "sms_confirmations_dlq"
)

type Connection interface {
	Channel() (Channel, error)
	Close() error
	IsClosed() bool
}

type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Confirm(noWait bool) error
	Publish(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (Confirmation, error)
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	Close() error
	NotifyClose() <-chan *amqp.Error
}

// Confirmation resolves once the broker acks or nacks a publish made in confirm mode
type Confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

var errNotConfirmMode = errors.New("channel is not in confirm mode")

type Queue struct {
	Name      string
	Messages  int
	Consumers int
}

type amqpConnection struct {
	conn   *amqp.Connection
	mu     sync.RWMutex
	closed bool
}

type amqpChannel struct {
	ch *amqp.Channel
}

func Connect(url string) (Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return &amqpConnection{conn: conn}, nil
}

func (c *amqpConnection) Channel() (Channel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, fmt.Errorf("connection is closed")
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return &amqpChannel{ch: ch}, nil
}

func (c *amqpConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn != nil && !c.conn.IsClosed() {
		return c.conn.Close()
	}
	return nil
}

func (c *amqpConnection) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed || c.conn.IsClosed()
}

func (ch *amqpChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return ch.ch.ExchangeDeclare(name, kind, durable, autoDelete, internal, noWait, args)
}

func (ch *amqpChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (Queue, error) {
	q, err := ch.ch.QueueDeclare(name, durable, autoDelete, exclusive, noWait, args)
	if err != nil {
		return Queue{}, err
	}
	return Queue{Name: q.Name, Messages: q.Messages, Consumers: q.Consumers}, nil
}

func (ch *amqpChannel) QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error {
	return ch.ch.QueueBind(name, key, exchange, noWait, args)
}

func (ch *amqpChannel) Confirm(noWait bool) error {
	return ch.ch.Confirm(noWait)
}

func (ch *amqpChannel) Publish(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (Confirmation, error) {
	dc, err := ch.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, mandatory, immediate, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errNotConfirmMode
	}
	return dc, nil
}

func (ch *amqpChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	return ch.ch.Consume(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
}

func (ch *amqpChannel) Qos(prefetchCount, prefetchSize int, global bool) error {
	return ch.ch.Qos(prefetchCount, prefetchSize, global)
}

func (ch *amqpChannel) Close() error {
	return ch.ch.Close()
}

func (ch *amqpChannel) NotifyClose() <-chan *amqp.Error {
	return ch.ch.NotifyClose(make(chan *amqp.Error, 1))
}

// declareConfirmations sets up the direct exchange, the work queue and its dead-letter queue
func declareConfirmations(ch Channel) error {
	if err := ch.ExchangeDeclare(ConfirmationsExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}
	if err := ch.ExchangeDeclare(deadLetterExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare DLQ exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(deadLetterQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare DLQ: %w", err)
	}
	if err := ch.QueueBind(deadLetterQueue, "", deadLetterExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind DLQ: %w", err)
	}

	args := amqp.Table{"x-dead-letter-exchange": deadLetterExchange}
	q, err := ch.QueueDeclare(ConfirmationsQueue, true, false, false, false, args)
	if err != nil {
		return fmt.Errorf("failed to declare confirmations queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, ConfirmationsKey, ConfirmationsExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind confirmations queue: %w", err)
	}
	return nil
}
