package cli

import (
	"context"
	"sync"

	"github.com/dayadevraha/devraha/internal/client/client"
	"github.com/dayadevraha/devraha/internal/client/models"
)

// fakeAPI is a canned client.Client. Subjects are per kind; a nil subject
// makes ValidateToken and Profile answer 401.
type fakeAPI struct {
	mu sync.Mutex

	subjects  map[models.Kind]*models.Subject
	twoFactor bool
	loginErr  error
	calls     []string

	lastRegister models.RegisterRequest
	lastOTP      models.VerifyOTPRequest
	lastUpdate   models.ProfileUpdate
	lastToken    string
	lastEmail    string
	lastReset    models.ResetPasswordRequest
}

var _ client.Client = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{subjects: make(map[models.Kind]*models.Subject)}
}

func (f *fakeAPI) call(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) current(kind models.Kind) (*models.Subject, error) {
	s, ok := f.subjects[kind]
	if !ok || s == nil {
		return nil, &client.APIError{Status: 401, Message: "Not authenticated"}
	}
	return s.Clone(), nil
}

func (f *fakeAPI) Register(_ context.Context, kind models.Kind, req models.RegisterRequest) (*models.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("register")
	f.lastRegister = req
	s := &models.Subject{ID: "id-" + kind.String(), Email: req.Email, Name: req.Name, DateOfBirth: req.DateOfBirth}
	f.subjects[kind] = s
	return s.Clone(), nil
}

func (f *fakeAPI) Login(_ context.Context, kind models.Kind, req models.LoginRequest) (*models.LoginResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("login")
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.twoFactor {
		return &models.LoginResponse{TwoFactorRequired: true}, nil
	}
	s := &models.Subject{ID: "id-" + kind.String(), Email: req.Email, Name: "Sita", IsVerified: true}
	f.subjects[kind] = s
	return &models.LoginResponse{Subject: *s.Clone()}, nil
}

func (f *fakeAPI) VerifyOTP(_ context.Context, kind models.Kind, req models.VerifyOTPRequest) (*models.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("verify-otp")
	f.lastOTP = req
	if req.OTP != "123456" {
		return nil, &client.APIError{Status: 400, Message: "Invalid or expired OTP"}
	}
	s := &models.Subject{ID: "id-" + kind.String(), Email: req.Email, Name: "Sita", IsVerified: true, TwoFactorEnabled: true}
	f.subjects[kind] = s
	return s.Clone(), nil
}

func (f *fakeAPI) Logout(_ context.Context, kind models.Kind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("logout")
	delete(f.subjects, kind)
	return nil
}

func (f *fakeAPI) ValidateToken(_ context.Context, kind models.Kind) (*models.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("validate")
	return f.current(kind)
}

func (f *fakeAPI) Profile(_ context.Context, kind models.Kind) (*models.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("profile")
	return f.current(kind)
}

func (f *fakeAPI) UpdateProfile(_ context.Context, kind models.Kind, req models.ProfileUpdate) (*models.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("update")
	f.lastUpdate = req
	s, err := f.current(kind)
	if err != nil {
		return nil, err
	}
	req.Apply(s)
	f.subjects[kind] = s
	return s.Clone(), nil
}

func (f *fakeAPI) DeleteAccount(_ context.Context, kind models.Kind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("delete")
	delete(f.subjects, kind)
	return nil
}

func (f *fakeAPI) EnableTwoFactor(_ context.Context, kind models.Kind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("2fa-enable")
	if s := f.subjects[kind]; s != nil {
		s.TwoFactorEnabled = true
	}
	return nil
}

func (f *fakeAPI) DisableTwoFactor(_ context.Context, kind models.Kind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("2fa-disable")
	if s := f.subjects[kind]; s != nil {
		s.TwoFactorEnabled = false
	}
	return nil
}

func (f *fakeAPI) VerifyEmail(_ context.Context, kind models.Kind, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("verify-email")
	f.lastToken = token
	if s := f.subjects[kind]; s != nil {
		s.IsVerified = true
	}
	return true, nil
}

func (f *fakeAPI) VerificationStatus(_ context.Context, kind models.Kind) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("verification-status")
	s, err := f.current(kind)
	if err != nil {
		return false, err
	}
	return s.IsVerified, nil
}

func (f *fakeAPI) ResendVerification(_ context.Context, _ models.Kind, email string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("resend")
	f.lastEmail = email
	return "Verification email sent", nil
}

func (f *fakeAPI) ForgotPassword(_ context.Context, _ models.Kind, email string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("forgot")
	f.lastEmail = email
	return "If that email exists, a reset link was sent", nil
}

func (f *fakeAPI) ResetPassword(_ context.Context, _ models.Kind, req models.ResetPasswordRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.call("reset")
	f.lastReset = req
	return "Password has been reset", nil
}
