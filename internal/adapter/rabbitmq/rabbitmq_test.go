package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

func TestPublisher_PublishConfirmation(t *testing.T) {
	ch := newFakeChannel()
	pub := NewPublisher(&fakeConnection{ch: ch})

	msg := interfaces.ConfirmationMessage{
		Reference: "ref-1",
		Body:      "Thank you for ordering!",
		PlacedAt:  time.Date(2022, 1, 8, 20, 20, 0, 0, time.UTC),
	}
	if err := pub.PublishConfirmation(context.Background(), msg); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(ch.published) != 1 {
		t.Fatalf("expected one publish, got %d", len(ch.published))
	}
	got := ch.published[0]
	if got.exchange != ConfirmationsExchange || got.key != ConfirmationsKey {
		t.Fatalf("unexpected route %s/%s", got.exchange, got.key)
	}
	if got.msg.DeliveryMode != amqp.Persistent || got.msg.MessageId != "ref-1" {
		t.Fatalf("expected persistent message with id ref-1, got %+v", got.msg)
	}

	var decoded interfaces.ConfirmationMessage
	if err := json.Unmarshal(got.msg.Body, &decoded); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if decoded.Body != msg.Body || decoded.Reference != msg.Reference {
		t.Fatalf("unexpected payload %+v", decoded)
	}
	if !ch.confirmMode {
		t.Fatalf("expected channel to be in confirm mode")
	}
}

func TestPublisher_ReusesChannel(t *testing.T) {
	ch := newFakeChannel()
	conn := &fakeConnection{ch: ch}
	pub := NewPublisher(conn)

	for i := 0; i < 3; i++ {
		if err := pub.PublishConfirmation(context.Background(), interfaces.ConfirmationMessage{Reference: "ref"}); err != nil {
			t.Fatalf("publish %d: %v", i, err)
		}
	}
	if conn.opened != 1 {
		t.Fatalf("expected one channel, opened %d", conn.opened)
	}
	if ch.exchanges != 2 {
		t.Fatalf("expected topology declared once (2 exchanges), got %d exchange declares", ch.exchanges)
	}
	if ch.closed {
		t.Fatalf("expected channel to stay open between publishes")
	}

	// broker closed the channel: the next publish reopens and redeclares
	ch.closeCh <- amqp.ErrClosed
	if err := pub.PublishConfirmation(context.Background(), interfaces.ConfirmationMessage{Reference: "ref"}); err != nil {
		t.Fatalf("publish after close: %v", err)
	}
	if conn.opened != 2 || ch.exchanges != 4 {
		t.Fatalf("expected reopen with redeclare, opened=%d exchanges=%d", conn.opened, ch.exchanges)
	}
}

func TestPublisher_BrokerNack(t *testing.T) {
	ch := newFakeChannel()
	ch.nack = true
	pub := NewPublisher(&fakeConnection{ch: ch})

	err := pub.PublishConfirmation(context.Background(), interfaces.ConfirmationMessage{Reference: "ref-2"})
	if !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
}

func TestPublisher_ConfirmModeUnavailable(t *testing.T) {
	ch := newFakeChannel()
	ch.confirmErr = errors.New("not supported")
	pub := NewPublisher(&fakeConnection{ch: ch})

	if err := pub.PublishConfirmation(context.Background(), interfaces.ConfirmationMessage{}); err == nil {
		t.Fatalf("expected error")
	}
	if len(ch.published) != 0 {
		t.Fatalf("expected nothing published without confirm mode")
	}
}

func TestPublisher_ChannelError(t *testing.T) {
	pub := NewPublisher(&fakeConnection{openErr: errors.New("connection is closed")})
	if err := pub.PublishConfirmation(context.Background(), interfaces.ConfirmationMessage{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestQueuedNotifier_Send(t *testing.T) {
	t.Run("accepted by broker", func(t *testing.T) {
		ch := newFakeChannel()
		n := NewQueuedNotifier(NewPublisher(&fakeConnection{ch: ch}), time.Second, logger.Nop())

		if !n.Send("hello") {
			t.Fatalf("expected Send to succeed")
		}
		if len(ch.published) != 1 {
			t.Fatalf("expected one publish")
		}
	})

	t.Run("nacked by broker", func(t *testing.T) {
		ch := newFakeChannel()
		ch.nack = true
		n := NewQueuedNotifier(NewPublisher(&fakeConnection{ch: ch}), time.Second, logger.Nop())

		if n.Send("hello") {
			t.Fatalf("expected Send to fail when the broker nacks")
		}
	})

	t.Run("publish failure", func(t *testing.T) {
		ch := newFakeChannel()
		ch.publishErr = errors.New("channel closed")
		n := NewQueuedNotifier(NewPublisher(&fakeConnection{ch: ch}), time.Second, logger.Nop())

		if n.Send("hello") {
			t.Fatalf("expected Send to fail")
		}
	})
}

func TestConsumer_AcksAndDeadLetters(t *testing.T) {
	ch := newFakeChannel()
	acks := &fakeAcknowledger{results: make(chan ackResult, 2)}
	c := NewConsumer(&fakeConnection{ch: ch}, 1, logger.Nop())

	ch.deliveries <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 1, Body: []byte("ok")}
	ch.deliveries <- amqp.Delivery{Acknowledger: acks, DeliveryTag: 2, Body: []byte("bad")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- c.ConsumeConfirmations(ctx, func(ctx context.Context, body []byte) error {
			if string(body) == "bad" {
				return errors.New("not delivered")
			}
			return nil
		})
	}()

	first := <-acks.results
	second := <-acks.results
	cancel()

	if !first.ack || first.tag != 1 {
		t.Fatalf("expected ack for tag 1, got %+v", first)
	}
	if second.ack || second.requeue || second.tag != 2 {
		t.Fatalf("expected nack without requeue for tag 2, got %+v", second)
	}

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("consumer did not stop after cancel")
	}
}
