package mailer

import (
	"context"
	"fmt"
	ht "html/template"
	"log/slog"
	tt "text/template"
	"time"

	"github.com/SscSPs/currency_converter/internal/core/ports"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/wneessen/go-mail"
)

const sendTimeout = 15 * time.Second

// Sender delivers built messages. *mail.Client satisfies it.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type templateData struct {
	Name   string
	Code   string
	Expiry string
	Year   int
}

// SMTPMailer sends account emails through an SMTP relay.
type SMTPMailer struct {
	sender   Sender
	from     string
	fromName string
	now      func() time.Time
}

var _ ports.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer dials nothing up front; each send opens its own connection.
func NewSMTPMailer(cfg *config.Config) (*SMTPMailer, error) {
	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPass),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return NewWithSender(client, cfg.SMTPFromEmail, cfg.SMTPFromName), nil
}

// NewWithSender builds a mailer around an existing Sender.
func NewWithSender(sender Sender, from, fromName string) *SMTPMailer {
	return &SMTPMailer{sender: sender, from: from, fromName: fromName, now: time.Now}
}

func (m *SMTPMailer) SendOTP(ctx context.Context, to, name, otp string) error {
	data := templateData{Name: name, Code: otp, Expiry: "10 minutes", Year: m.now().Year()}
	return m.send(ctx, to, "Your Currency Converter OTP Code", otpText, otpHTML, data)
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, name, resetToken string) error {
	data := templateData{Name: name, Code: resetToken, Expiry: "1 hour", Year: m.now().Year()}
	return m.send(ctx, to, "Password Reset Request - Currency Converter", resetText, resetHTML, data)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject string, text *tt.Template, html *ht.Template, data templateData) error {
	msg, err := m.build(to, subject, text, html, data)
	if err != nil {
		return err
	}
	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", subject, to, err)
	}
	slog.InfoContext(ctx, "Email sent", slog.String("subject", subject), slog.String("to", to))
	return nil
}

func (m *SMTPMailer) build(to, subject string, text *tt.Template, html *ht.Template, data templateData) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	if err := msg.SetBodyTextTemplate(text, data); err != nil {
		return nil, fmt.Errorf("failed to render text body: %w", err)
	}
	if err := msg.AddAlternativeHTMLTemplate(html, data); err != nil {
		return nil, fmt.Errorf("failed to render html body: %w", err)
	}
	return msg, nil
}

// LogMailer stands in when SMTP is not configured. Codes go to the log at debug level.
type LogMailer struct {
	logger *slog.Logger
}

var _ ports.Mailer = (*LogMailer)(nil)

func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (l *LogMailer) SendOTP(ctx context.Context, to, _, otp string) error {
	l.logger.WarnContext(ctx, "SMTP disabled, OTP email not sent", slog.String("to", to))
	l.logger.DebugContext(ctx, "Undelivered OTP", slog.String("to", to), slog.String("otp", otp))
	return nil
}

func (l *LogMailer) SendPasswordReset(ctx context.Context, to, _, resetToken string) error {
	l.logger.WarnContext(ctx, "SMTP disabled, password reset email not sent", slog.String("to", to))
	l.logger.DebugContext(ctx, "Undelivered reset token", slog.String("to", to), slog.String("token", resetToken))
	return nil
}

// New picks the SMTP mailer when credentials are configured.
func New(cfg *config.Config, logger *slog.Logger) (ports.Mailer, error) {
	if !cfg.SMTPEnabled() {
		return NewLogMailer(logger), nil
	}
	return NewSMTPMailer(cfg)
}
