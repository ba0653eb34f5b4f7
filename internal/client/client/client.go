package client

import (
	"context"

	"github.com/dayadevraha/devraha/internal/client/models"
)

// Client is the Devraha API surface. Methods that answer with a bare
// {message} envelope return that message.
type Client interface {
	Register(ctx context.Context, kind models.Kind, req models.RegisterRequest) (*models.Subject, error)
	Login(ctx context.Context, kind models.Kind, req models.LoginRequest) (*models.LoginResponse, error)
	VerifyOTP(ctx context.Context, kind models.Kind, req models.VerifyOTPRequest) (*models.Subject, error)
	Logout(ctx context.Context, kind models.Kind) error

	ValidateToken(ctx context.Context, kind models.Kind) (*models.Subject, error)
	Profile(ctx context.Context, kind models.Kind) (*models.Subject, error)
	// UpdateProfile returns the updated subject, or nil when the API answered
	// without one.
	UpdateProfile(ctx context.Context, kind models.Kind, req models.ProfileUpdate) (*models.Subject, error)
	DeleteAccount(ctx context.Context, kind models.Kind) error

	EnableTwoFactor(ctx context.Context, kind models.Kind) error
	DisableTwoFactor(ctx context.Context, kind models.Kind) error

	VerifyEmail(ctx context.Context, kind models.Kind, token string) (bool, error)
	VerificationStatus(ctx context.Context, kind models.Kind) (bool, error)
	ResendVerification(ctx context.Context, kind models.Kind, email string) (string, error)
	ForgotPassword(ctx context.Context, kind models.Kind, email string) (string, error)
	ResetPassword(ctx context.Context, kind models.Kind, req models.ResetPasswordRequest) (string, error)
}
