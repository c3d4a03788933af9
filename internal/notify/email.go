package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/config"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const temporaryPasswordSubject = "Credentials by Cafe Management System"

// Dialer is the subset of gomail.Dialer used for delivery.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailNotifier sends mail over SMTP.
type EmailNotifier struct {
	cfg    *config.SMTPConfig
	dialer Dialer
}

func NewEmailNotifier(cfg *config.SMTPConfig) *EmailNotifier {
	return &EmailNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// NewEmailNotifierWithDialer is used when the SMTP transport is provided by the caller.
func NewEmailNotifierWithDialer(cfg *config.SMTPConfig, dialer Dialer) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, dialer: dialer}
}

func (n *EmailNotifier) SendSimpleMessage(ctx context.Context, to, subject, text string, cc []string) error {
	if !n.cfg.Enabled() {
		logger.Warn("SMTP not configured, skipping email",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("empty recipient")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", to)
	if len(cc) > 0 {
		m.SetHeader("Cc", cc...)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)

	if err := n.send(ctx, m); err != nil {
		return err
	}

	logger.Info("Email sent",
		zap.String("to", to),
		zap.Int("cc_count", len(cc)),
		zap.String("subject", subject),
	)
	return nil
}

func (n *EmailNotifier) SendTemporaryPassword(ctx context.Context, to, password string) error {
	if !n.cfg.Enabled() {
		return fmt.Errorf("email config missing")
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("empty recipient")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", temporaryPasswordSubject)
	m.SetBody("text/html", fmt.Sprintf(`<p><b>Your login details for Cafe Management System</b><br>
<b>Email: </b>%s<br>
<b>Temporary password: </b>%s</p>
<p>Please change it after signing in.</p>`, html.EscapeString(to), html.EscapeString(password)))

	if err := n.send(ctx, m); err != nil {
		return err
	}

	logger.Info("Temporary password email sent", zap.String("to", to))
	return nil
}

func (n *EmailNotifier) send(ctx context.Context, m *gomail.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
