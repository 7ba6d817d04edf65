package notifier

import (
	"fmt"
	"net/smtp"
	"strings"

	"auctionhouse/utils"
)

// Mailer sends outbound email. Delivery is best-effort: callers fire and
// forget, and a failure must never fail the operation that triggered it.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPConfig holds the SMTP connection settings.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
}

// NewMailer returns an SMTP-backed mailer, or a log-only mailer when no
// credentials are configured (development mode).
func NewMailer(cfg SMTPConfig) Mailer {
	if cfg.User == "" || cfg.Pass == "" {
		return &LogMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

// SMTPMailer delivers mail over authenticated SMTP.
type SMTPMailer struct {
	cfg SMTPConfig
}

// Send delivers a single HTML email.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := strings.Join([]string{
		"From: " + m.cfg.User,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, m.cfg.User, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}

	utils.Info("email sent", map[string]any{"to": to, "subject": subject})
	return nil
}

// LogMailer logs messages instead of sending them. Used when SMTP credentials
// are absent so local development still shows what would have gone out.
type LogMailer struct{}

// Send logs the message and reports success.
func (m *LogMailer) Send(to, subject, htmlBody string) error {
	utils.Info("email dev mode: delivery skipped", map[string]any{
		"to":      to,
		"subject": subject,
		"body":    htmlBody,
	})
	return nil
}
