package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/BruksfildServices01/garage-booking/internal/config"
)

// SMTPTransport sends each message over a fresh SMTP session.
type SMTPTransport struct {
	client *mail.Client
}

func NewSMTPTransport(cfg config.Mail) (*SMTPTransport, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPTransport{client: client}, nil
}

func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := t.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// LogTransport writes messages to the log instead of delivering them.
type LogTransport struct {
	log *slog.Logger
}

func NewLogTransport(log *slog.Logger) *LogTransport {
	return &LogTransport{log: log}
}

func (t *LogTransport) Send(ctx context.Context, msg Message) error {
	t.log.InfoContext(ctx, "email (not delivered, MAIL_HOST unset)",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}

// NewTransport picks SMTP when a host is configured and the log otherwise.
func NewTransport(cfg config.Mail, log *slog.Logger) (Transport, error) {
	if cfg.Host == "" {
		return NewLogTransport(log), nil
	}
	return NewSMTPTransport(cfg)
}
