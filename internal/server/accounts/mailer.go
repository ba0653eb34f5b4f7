package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	resend "github.com/resend/resend-go/v2"

	"github.com/dayadevraha/devraha/internal/logging"
	"github.com/dayadevraha/devraha/internal/server/metrics"
)

// Mailer delivers the account emails. Links are built by the implementation.
type Mailer interface {
	SendVerification(ctx context.Context, kind, to, token string) error
	SendPasswordReset(ctx context.Context, kind, to, token string) error
	SendOTP(ctx context.Context, to, code string) error
}

// LinkBuilder turns a token into a link on the site.
type LinkBuilder struct {
	BaseURL string
}

func (b LinkBuilder) build(kind, page, token string) string {
	base := strings.TrimRight(b.BaseURL, "/")
	if base == "" {
		return token
	}
	return fmt.Sprintf("%s/%s/%s?token=%s", base, kind, page, token)
}

// LogMailer writes each message to the log instead of sending it.
type LogMailer struct {
	links  LinkBuilder
	logger logging.Logger
}

func NewLogMailer(baseURL string, logger logging.Logger) *LogMailer {
	return &LogMailer{links: LinkBuilder{BaseURL: baseURL}, logger: logger.With("module", "log_mailer")}
}

func (m *LogMailer) SendVerification(ctx context.Context, kind, to, token string) error {
	m.logger.Info(ctx, "verification email", "to", to, "link", m.links.build(kind, "verify-email", token))
	return nil
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, kind, to, token string) error {
	m.logger.Info(ctx, "password reset email", "to", to, "link", m.links.build(kind, "reset-password", token))
	return nil
}

func (m *LogMailer) SendOTP(ctx context.Context, to, code string) error {
	m.logger.Info(ctx, "one-time code email", "to", to, "code", code)
	return nil
}

// emailSender is the part of the Resend client ResendMailer uses.
type emailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendMailer sends mail through the Resend API.
type ResendMailer struct {
	emails emailSender
	from   string
	links  LinkBuilder
}

func NewResendMailer(apiKey, from, baseURL string) (*ResendMailer, error) {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return nil, errors.New("resend mailer needs an API key and a sender")
	}
	client := resend.NewClient(apiKey)
	return &ResendMailer{emails: client.Emails, from: from, links: LinkBuilder{BaseURL: baseURL}}, nil
}

func (m *ResendMailer) SendVerification(ctx context.Context, kind, to, token string) error {
	link := m.links.build(kind, "verify-email", token)
	return m.send(ctx, to, "Verify your email",
		fmt.Sprintf("<p>Click to verify your email:</p><p><a href=\"%s\">Verify Email</a></p>", link),
		"Verify your email: "+link)
}

func (m *ResendMailer) SendPasswordReset(ctx context.Context, kind, to, token string) error {
	link := m.links.build(kind, "reset-password", token)
	return m.send(ctx, to, "Reset your password",
		fmt.Sprintf("<p>Click to reset your password:</p><p><a href=\"%s\">Reset Password</a></p>", link),
		"Reset your password: "+link)
}

func (m *ResendMailer) SendOTP(ctx context.Context, to, code string) error {
	return m.send(ctx, to, "Your sign-in code",
		fmt.Sprintf("<p>Your sign-in code is <strong>%s</strong>. It expires in a few minutes.</p>", code),
		"Your sign-in code is "+code)
}

func (m *ResendMailer) send(ctx context.Context, to, subject, html, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := m.emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

// NewMailer picks Resend when apiKey is set and the log otherwise. Sends
// are counted in metrics.MailsSentTotal.
func NewMailer(apiKey, from, baseURL string, logger logging.Logger) (Mailer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return Instrument(NewLogMailer(baseURL, logger)), nil
	}
	m, err := NewResendMailer(apiKey, from, baseURL)
	if err != nil {
		return nil, err
	}
	return Instrument(m), nil
}

type instrumentedMailer struct {
	next Mailer
}

// Instrument counts the sends of m.
func Instrument(m Mailer) Mailer {
	return &instrumentedMailer{next: m}
}

func count(typ string, err error) error {
	result := "sent"
	if err != nil {
		result = "failed"
	}
	metrics.MailsSentTotal.WithLabelValues(typ, result).Inc()
	return err
}

func (m *instrumentedMailer) SendVerification(ctx context.Context, kind, to, token string) error {
	return count("verification", m.next.SendVerification(ctx, kind, to, token))
}

func (m *instrumentedMailer) SendPasswordReset(ctx context.Context, kind, to, token string) error {
	return count("password_reset", m.next.SendPasswordReset(ctx, kind, to, token))
}

func (m *instrumentedMailer) SendOTP(ctx context.Context, to, code string) error {
	return count("otp", m.next.SendOTP(ctx, to, code))
}
