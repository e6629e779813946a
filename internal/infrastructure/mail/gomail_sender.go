// Package mail sends outbound notification email over SMTP (gomail).
package mail

import (
	"fmt"

	"github.com/voyagetech/voyagecrm-api/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

// GomailSender sends plain-text mail through the configured SMTP relay. It
// satisfies the application layer's MailSender port.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender builds the sender.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// Send delivers one message. One dial per message: notification volume is a
// handful of mails per agreement, not a campaign.
func (s *GomailSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// NopSender stands in when SMTP is not configured.
type NopSender struct{}

// Send discards the message.
func (NopSender) Send(_, _, _ string) error { return nil }
