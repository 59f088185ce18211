package notify

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/srijaidev/tours-backend/pkg/logging"
)

// EmailSender defines the interface for sending emails.
// Implementations can be swapped (SMTP relay, stub) without changing callers.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	To      string
	Subject string
	Body    string // Plain text body
	HTML    string // Optional HTML body
}

// SMTPSender sends emails through the relay described by a RelaySettings record.
type SMTPSender struct {
	settings *RelaySettings
	logger   *logging.Logger
}

// NewSMTPSender creates a sender for the given relay settings.
func NewSMTPSender(settings *RelaySettings, logger *logging.Logger) *SMTPSender {
	if settings == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SMTPSender{settings: settings, logger: logger}
}

// Send dials the relay and delivers the message, honouring ctx cancellation.
func (s *SMTPSender) Send(ctx context.Context, msg EmailMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.settings.FromEmail, s.settings.FromName))
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.Body != "" {
		m.SetBody("text/plain", msg.Body)
		if msg.HTML != "" {
			m.AddAlternative("text/html", msg.HTML)
		}
	} else {
		m.SetBody("text/html", msg.HTML)
	}

	dialer := gomail.NewDialer(s.settings.Host, s.settings.Port, s.settings.Username, s.settings.Password)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.logger.Error("smtp send failed", "error", err, "to", msg.To, "host", s.settings.Host)
			return fmt.Errorf("notify: smtp send failed: %w", err)
		}
		s.logger.Info("email sent via smtp relay", "to", msg.To, "subject", msg.Subject)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// StubEmailSender is a no-op sender for testing or when email is disabled.
type StubEmailSender struct {
	logger *logging.Logger
}

// NewStubEmailSender creates a stub email sender that logs but doesn't send.
func NewStubEmailSender(logger *logging.Logger) *StubEmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubEmailSender{logger: logger}
}

// Send logs the email but doesn't actually send it.
func (s *StubEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	s.logger.Info("stub email sender: would send email", "to", msg.To, "subject", msg.Subject)
	return nil
}

// Ensure interface compliance
var _ EmailSender = (*SMTPSender)(nil)
var _ EmailSender = (*StubEmailSender)(nil)
