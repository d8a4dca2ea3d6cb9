package rabbitmq

import (
	"context"
	"errors"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeConfirmation struct {
	ack bool
	err error
}

func (c fakeConfirmation) WaitContext(ctx context.Context) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	return c.ack, nil
}

type fakeChannel struct {
	mu          sync.Mutex
	publishErr  error
	nack        bool
	confirmErr  error
	confirmMode bool
	exchanges   int
	published  []published
	queues     []string
	deliveries chan amqp.Delivery
	closeCh    chan *amqp.Error
	closed     bool
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{
		deliveries: make(chan amqp.Delivery, 8),
		closeCh:    make(chan *amqp.Error, 1),
	}
}

func (c *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exchanges++
	return nil
}

func (c *fakeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (Queue, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queues = append(c.queues, name)
	return Queue{Name: name}, nil
}

func (c *fakeChannel) QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error {
	return nil
}

func (c *fakeChannel) Confirm(noWait bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.confirmErr != nil {
		return c.confirmErr
	}
	c.confirmMode = true
	return nil
}

func (c *fakeChannel) Publish(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (Confirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.publishErr != nil {
		return nil, c.publishErr
	}
	if !c.confirmMode {
		return nil, errNotConfirmMode
	}
	c.published = append(c.published, published{exchange: exchange, key: key, msg: msg})
	return fakeConfirmation{ack: !c.nack}, nil
}

func (c *fakeChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	return c.deliveries, nil
}

func (c *fakeChannel) Qos(prefetchCount, prefetchSize int, global bool) error {
	return nil
}

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeChannel) NotifyClose() <-chan *amqp.Error {
	return c.closeCh
}

type fakeConnection struct {
	ch      *fakeChannel
	openErr error
	opened  int
}

func (c *fakeConnection) Channel() (Channel, error) {
	if c.openErr != nil {
		return nil, c.openErr
	}
	c.opened++
	return c.ch, nil
}

func (c *fakeConnection) Close() error  { return nil }
func (c *fakeConnection) IsClosed() bool { return false }

type ackResult struct {
	tag     uint64
	ack     bool
	requeue bool
}

type fakeAcknowledger struct {
	results chan ackResult
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.results <- ackResult{tag: tag, ack: true}
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	a.results <- ackResult{tag: tag, ack: false, requeue: requeue}
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return errors.New("reject not expected")
}
