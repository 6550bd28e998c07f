package mailer

import (
	"fmt"

	"venue-booking/pkg/utils"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// Sender delivers notification mails. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

// NewMailer returns a gomail-backed Sender, or a no-op sender when SMTP
// is not configured.
func NewMailer(config utils.EmailConfig, log *zap.Logger) Sender {
	if config.Host == "" {
		log.Warn("SMTP not configured, mail notifications disabled")
		return &noopMailer{log: log.With(zap.String("mailer", "noop"))}
	}

	return &smtpMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:   config.From,
		log:    log.With(zap.String("mailer", "smtp")),
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send mail",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.log.Info("Mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

type noopMailer struct {
	log *zap.Logger
}

func (m *noopMailer) Send(to, subject, _ string) error {
	m.log.Debug("Mail skipped", zap.String("to", to), zap.String("subject", subject))
	return nil
}
