package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"gopkg.in/gomail.v2"
)

// EmailNotifier implements [Notifier] over SMTP.
type EmailNotifier struct {
	cfg    config.Email
	logger *logger.Logger
}

// NewEmailNotifier constructs an SMTP-backed notifier.
func NewEmailNotifier(cfg config.Email, logger *logger.Logger) *EmailNotifier {
	return &EmailNotifier{
		cfg:    cfg,
		logger: logger,
	}
}

// SendPasswordResetEmail implements [Notifier].
func (n *EmailNotifier) SendPasswordResetEmail(ctx context.Context, toEmail, token string) error {
	body := fmt.Sprintf(
		"<p>A password recovery was requested for %s.</p>"+
			"<p>Use this token to reset your password: <code>%s</code></p>"+
			"<p>If you did not request a recovery, you can ignore this email.</p>",
		toEmail, token,
	)
	return n.send(ctx, toEmail, "Password recovery", body)
}

// SendNewAccountEmail implements [Notifier].
func (n *EmailNotifier) SendNewAccountEmail(ctx context.Context, toEmail, password string) error {
	body := fmt.Sprintf(
		"<p>An account was created for %s.</p>"+
			"<p>Your password is: <code>%s</code></p>",
		toEmail, password,
	)
	return n.send(ctx, toEmail, "New account", body)
}

// SendTestEmail implements [Notifier].
func (n *EmailNotifier) SendTestEmail(ctx context.Context, toEmail string) error {
	return n.send(ctx, toEmail, "Test email", "<p>Test email: it worked.</p>")
}

func (n *EmailNotifier) send(ctx context.Context, toEmail, subject, htmlBody string) error {
	log := logger.FromContext(ctx)

	if n.cfg.SMTPHost == "" || n.cfg.FromEmail == "" {
		log.Warn().Msg("email config missing, skip notification")
		return nil
	}
	if strings.TrimSpace(toEmail) == "" {
		log.Warn().Msg("email recipient empty, skip notification")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.FromEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(n.cfg.SMTPHost, n.cfg.SMTPPort, n.cfg.SMTPUser, n.cfg.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	log.Info().Str("to", toEmail).Str("subject", subject).Msg("email notification sent")
	return nil
}
