package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/electromart/electromart-backend/pkg/config"
)

// Message is one outbound HTML mail.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a message. The production implementation speaks SMTP;
// tests substitute a fake.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers mail through the configured SMTP relay.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender builds a sender from config. Returns nil when mail is not
// configured, which the dispatcher treats as "log and skip".
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	if !cfg.Enabled() {
		return nil
	}
	return &SMTPSender{cfg: cfg}
}

// Send delivers one message. A fresh client per send keeps the connection
// handling simple at this volume.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, m)
}
