package sms

import (
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

// Config identifies the sender account and both ends of the conversation
type Config struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

// MessageCreator is the part of the Twilio REST client the notifier uses
type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type Notifier struct {
	client MessageCreator
	from   string
	to     string
	logger logger.Logger
}

var _ interfaces.Notifier = (*Notifier)(nil)

// NewNotifier builds a notifier backed by the Twilio REST API
func NewNotifier(cfg Config, logger logger.Logger) *Notifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return NewNotifierWithClient(client.Api, cfg, logger)
}

func NewNotifierWithClient(client MessageCreator, cfg Config, logger logger.Logger) *Notifier {
	return &Notifier{
		client: client,
		from:   cfg.From,
		to:     cfg.To,
		logger: logger,
	}
}

// Send reports true only when Twilio returns a message SID
func (n *Notifier) Send(body string) bool {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(body)

	resp, err := n.client.CreateMessage(params)
	if err != nil {
		n.logger.Error("sms_send_failed", "Twilio rejected the message", "", map[string]interface{}{"to": n.to}, err)
		return false
	}
	if resp == nil || resp.Sid == nil || *resp.Sid == "" {
		n.logger.Debug("sms_send_failed", "Twilio response carried no message sid", "", map[string]interface{}{"to": n.to})
		return false
	}

	n.logger.Info("sms_sent", "Confirmation SMS sent", "", map[string]interface{}{
		"to":  n.to,
		"sid": *resp.Sid,
	})
	return true
}
