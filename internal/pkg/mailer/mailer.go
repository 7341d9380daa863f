package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"stall-booking-service/config"
)

// Mailer delivers transactional mail (booking notifications, reset links).
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	cfg *config.MailerConfig
}

func New(cfg *config.MailerConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.cfg.Username == "" {
		// mail relay not configured, drop silently in development
		return nil
	}

	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s\r\n", to, subject, body))
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

	return smtp.SendMail(addr, auth, m.cfg.Username, []string{to}, msg)
}
