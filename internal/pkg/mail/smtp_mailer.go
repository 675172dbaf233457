package mail

import (
	"fmt"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"gopkg.in/gomail.v2"

	"github.com/boldgroup/website/internal/pkg/env"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

func ConfigFromEnv() Config {
	return Config{
		Host:     env.GetEnv("SMTP_HOST", ""),
		Port:     env.GetEnvInt("SMTP_PORT", 587),
		Username: env.GetEnv("SMTP_USERNAME", ""),
		Password: env.GetEnv("SMTP_PASSWORD", ""),
		Sender:   env.GetEnv("SMTP_SENDER", ""),
	}
}

// Enabled reports whether a relay host is configured.
func (c Config) Enabled() bool {
	return c.Host != ""
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer sends plain text emails via SMTP.
type SMTPMailer struct {
	sender string
	dialer dialer
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	if cfg.Sender == "" {
		cfg.Sender = "no-reply@localhost"
		fiberlog.Warnf("SMTP_SENDER not set, using default sender: %s", cfg.Sender)
	}
	return &SMTPMailer{
		sender: cfg.Sender,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *SMTPMailer) SendMail(to, replyTo, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	if replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		fiberlog.Errorf("SMTP send error: %v", err)
		return fmt.Errorf("send mail: %w", err)
	}
	fiberlog.Info("Email sent")
	return nil
}
