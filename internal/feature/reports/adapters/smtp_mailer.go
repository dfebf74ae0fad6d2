package adapters

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"broker_backend/internal/feature/reports/usecase"
)

// SMTPConfig holds the mail delivery configuration.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LoadSMTPConfig loads mail configuration from environment variables.
func LoadSMTPConfig() SMTPConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// smtpMailer delivers report mails over SMTP.
type smtpMailer struct {
	cfg SMTPConfig
}

// Compile-time check that smtpMailer implements Mailer.
var _ usecase.Mailer = (*smtpMailer)(nil)

// NewSMTPMailer creates a mailer with the given configuration.
func NewSMTPMailer(cfg SMTPConfig) *smtpMailer {
	return &smtpMailer{cfg: cfg}
}

// Send delivers one mail with the given attachment.
func (m *smtpMailer) Send(to, subject, body, attachmentName string, attachment []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(attachment))
		return err
	}))

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
