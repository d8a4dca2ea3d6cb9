package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

// ErrNotConfirmed is returned when the broker nacks a published confirmation
var ErrNotConfirmed = errors.New("broker did not confirm message")

// publisher keeps one confirm-mode channel open and reopens it after the broker closes it.
// The topology is declared once per channel.
type publisher struct {
	conn   Connection
	mu     sync.Mutex
	ch     Channel
	closed <-chan *amqp.Error
}

func NewPublisher(conn Connection) interfaces.MessagePublisher {
	return &publisher{conn: conn}
}

// PublishConfirmation returns nil only after the broker acked the message
func (p *publisher) PublishConfirmation(ctx context.Context, msg interfaces.ConfirmationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	confirm, err := ch.Publish(ctx, ConfirmationsExchange, ConfirmationsKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    msg.Reference,
		Timestamp:    msg.PlacedAt,
		Body:         body,
	})
	if err != nil {
		p.reset()
		return fmt.Errorf("failed to publish message: %w", err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to wait for publisher confirm: %w", err)
	}
	if !acked {
		return fmt.Errorf("%w: %s", ErrNotConfirmed, msg.Reference)
	}
	return nil
}

func (p *publisher) channel() (Channel, error) {
	if p.ch != nil {
		select {
		case <-p.closed:
			p.ch = nil
		default:
			return p.ch, nil
		}
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}
	if err := declareConfirmations(ch); err != nil {
		ch.Close()
		return nil, err
	}

	p.ch = ch
	p.closed = ch.NotifyClose()
	return ch, nil
}

func (p *publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
}
