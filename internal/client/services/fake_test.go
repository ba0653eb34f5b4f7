package services

import (
	"context"
	"sync"

	"github.com/dayadevraha/devraha/internal/client/client"
	"github.com/dayadevraha/devraha/internal/client/models"
)

// fakeClient implements client.Client for store tests. Results are preset
// per endpoint; every call is counted by endpoint name.
type fakeClient struct {
	mu    sync.Mutex
	calls map[string]int

	RegisterRet *models.Subject
	RegisterErr error

	LoginRet *models.LoginResponse
	LoginErr error

	VerifyOTPRet *models.Subject
	VerifyOTPErr error

	LogoutErr error

	ValidateRet *models.Subject
	ValidateErr error

	ProfileRet *models.Subject
	ProfileErr error

	UpdateRet *models.Subject
	UpdateErr error

	DeleteErr error

	EnableErr  error
	DisableErr error

	VerifyEmailRet bool
	VerifyEmailErr error

	StatusRet bool
	StatusErr error

	MessageRet string
	MessageErr error

	LastKind     models.Kind
	LastRegister models.RegisterRequest
	LastLogin    models.LoginRequest
	LastOTP      models.VerifyOTPRequest
	LastUpdate   models.ProfileUpdate
	LastToken    string
	LastEmail    string
	LastReset    models.ResetPasswordRequest
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string, kind models.Kind, capture ...func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
	f.LastKind = kind
	for _, c := range capture {
		c()
	}
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) Register(ctx context.Context, kind models.Kind, req models.RegisterRequest) (*models.Subject, error) {
	f.record("register", kind, func() { f.LastRegister = req })
	return f.RegisterRet.Clone(), f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, kind models.Kind, req models.LoginRequest) (*models.LoginResponse, error) {
	f.record("login", kind, func() { f.LastLogin = req })
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	resp := *f.LoginRet
	return &resp, nil
}

func (f *fakeClient) VerifyOTP(ctx context.Context, kind models.Kind, req models.VerifyOTPRequest) (*models.Subject, error) {
	f.record("verify-otp", kind, func() { f.LastOTP = req })
	return f.VerifyOTPRet.Clone(), f.VerifyOTPErr
}

func (f *fakeClient) Logout(ctx context.Context, kind models.Kind) error {
	f.record("logout", kind)
	return f.LogoutErr
}

func (f *fakeClient) ValidateToken(ctx context.Context, kind models.Kind) (*models.Subject, error) {
	f.record("validate-token", kind)
	return f.ValidateRet.Clone(), f.ValidateErr
}

func (f *fakeClient) Profile(ctx context.Context, kind models.Kind) (*models.Subject, error) {
	f.record("profile", kind)
	return f.ProfileRet.Clone(), f.ProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, kind models.Kind, req models.ProfileUpdate) (*models.Subject, error) {
	f.record("update-profile", kind, func() { f.LastUpdate = req })
	return f.UpdateRet.Clone(), f.UpdateErr
}

func (f *fakeClient) DeleteAccount(ctx context.Context, kind models.Kind) error {
	f.record("delete-account", kind)
	return f.DeleteErr
}

func (f *fakeClient) EnableTwoFactor(ctx context.Context, kind models.Kind) error {
	f.record("enable-two-factor", kind)
	return f.EnableErr
}

func (f *fakeClient) DisableTwoFactor(ctx context.Context, kind models.Kind) error {
	f.record("disable-two-factor", kind)
	return f.DisableErr
}

func (f *fakeClient) VerifyEmail(ctx context.Context, kind models.Kind, token string) (bool, error) {
	f.record("verify-email", kind, func() { f.LastToken = token })
	return f.VerifyEmailRet, f.VerifyEmailErr
}

func (f *fakeClient) VerificationStatus(ctx context.Context, kind models.Kind) (bool, error) {
	f.record("verification-status", kind)
	return f.StatusRet, f.StatusErr
}

func (f *fakeClient) ResendVerification(ctx context.Context, kind models.Kind, email string) (string, error) {
	f.record("resend-verification", kind, func() { f.LastEmail = email })
	return f.MessageRet, f.MessageErr
}

func (f *fakeClient) ForgotPassword(ctx context.Context, kind models.Kind, email string) (string, error) {
	f.record("forgot-password", kind, func() { f.LastEmail = email })
	return f.MessageRet, f.MessageErr
}

func (f *fakeClient) ResetPassword(ctx context.Context, kind models.Kind, req models.ResetPasswordRequest) (string, error) {
	f.record("reset-password", kind, func() { f.LastReset = req })
	return f.MessageRet, f.MessageErr
}
