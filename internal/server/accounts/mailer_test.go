package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	resend "github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayadevraha/devraha/internal/logging"
	"github.com/dayadevraha/devraha/internal/server/metrics"
)

type fakeEmails struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeEmails) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.sent = append(f.sent, params)
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "msg-1"}, nil
}

func TestLinkBuilder(t *testing.T) {
	b := LinkBuilder{BaseURL: "https://dayadevraha.com/"}
	assert.Equal(t, "https://dayadevraha.com/admin/verify-email?token=abc", b.build("admin", "verify-email", "abc"))

	assert.Equal(t, "abc", LinkBuilder{}.build("user", "verify-email", "abc"))
}

func TestResendMailer(t *testing.T) {
	emails := &fakeEmails{}
	m := &ResendMailer{emails: emails, from: "Devraha <no-reply@dayadevraha.com>", links: LinkBuilder{BaseURL: "https://dayadevraha.com"}}
	ctx := context.Background()

	require.NoError(t, m.SendVerification(ctx, "user", "sita@example.com", "tok"))
	require.NoError(t, m.SendPasswordReset(ctx, "admin", "ram@example.com", "rst"))
	require.NoError(t, m.SendOTP(ctx, "sita@example.com", "123456"))

	require.Len(t, emails.sent, 3)
	assert.Equal(t, []string{"sita@example.com"}, emails.sent[0].To)
	assert.Equal(t, "Devraha <no-reply@dayadevraha.com>", emails.sent[0].From)
	assert.Contains(t, emails.sent[0].Text, "https://dayadevraha.com/user/verify-email?token=tok")
	assert.Contains(t, emails.sent[1].Html, "https://dayadevraha.com/admin/reset-password?token=rst")
	assert.Contains(t, emails.sent[2].Text, "123456")
}

func TestResendMailer_Error(t *testing.T) {
	emails := &fakeEmails{err: errors.New("rate limited")}
	m := &ResendMailer{emails: emails, from: "x@example.com"}

	err := m.SendOTP(context.Background(), "sita@example.com", "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, m.SendOTP(ctx, "sita@example.com", "123456"), context.Canceled)
	assert.Len(t, emails.sent, 1)
}

func TestNewMailer(t *testing.T) {
	before := testutil.ToFloat64(metrics.MailsSentTotal.WithLabelValues("otp", "sent"))

	m, err := NewMailer("", "", "", logging.Nop())
	require.NoError(t, err)
	require.IsType(t, &instrumentedMailer{}, m)
	assert.IsType(t, &LogMailer{}, m.(*instrumentedMailer).next)
	require.NoError(t, m.SendOTP(context.Background(), "a@example.com", "111111"))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.MailsSentTotal.WithLabelValues("otp", "sent")))

	m, err = NewMailer("re_123", "x@example.com", "", logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &ResendMailer{}, m.(*instrumentedMailer).next)

	_, err = NewResendMailer("re_123", "", "")
	require.Error(t, err)
}
