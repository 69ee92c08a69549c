package mailer

import (
	"gopkg.in/gomail.v2"

	"github.com/Rahul-rk007/shopping-kart-api/config"
)

// Mailer sends plain-text notification mails (password resets, contact-us).
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// Nop discards mail; used when no SMTP host is configured.
type Nop struct{}

func (Nop) Send(to, subject, body string) error { return nil }
