package email

import (
	"fmt"

	"freelancehub_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) (*SMTPProvider, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.Email.SMTPPort <= 0 || cfg.Email.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", cfg.Email.SMTPPort)
	}
	return &SMTPProvider{cfg: cfg}, nil
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}
