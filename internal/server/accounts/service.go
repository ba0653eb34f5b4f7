// Package accounts holds the sandbox account service: registration, login
// with optional emailed one-time codes, sessions, profile changes and the
// emailed verification and reset tokens. One Service serves one kind.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dayadevraha/devraha/internal/common"
	"github.com/dayadevraha/devraha/internal/logging"
	"github.com/dayadevraha/devraha/internal/server/auth"
)

// Options configures a Service.
type Options struct {
	SecretKey  string
	SessionTTL time.Duration
	TokenTTL   time.Duration
	// EmergencyContacts allows accounts to keep an emergency recovery
	// contact. Only users have one.
	EmergencyContacts bool
	// ProfileEdits allows changing name, email and date of birth after
	// registration. Only admins may.
	ProfileEdits bool
}

type Service struct {
	kind   string
	repo   Repository
	tokens TokenRepository
	mailer Mailer
	otp    *TOTPProvider
	logger logging.Logger

	jwtSecret         []byte
	sessionTTL        time.Duration
	tokenTTL          time.Duration
	emergencyContacts bool
	profileEdits      bool
	now               func() time.Time
	bcryptCost        int
}

func NewService(kind string, repo Repository, tokens TokenRepository, mailer Mailer, otp *TOTPProvider, logger logging.Logger, opts Options) *Service {
	return &Service{
		kind:              kind,
		repo:              repo,
		tokens:            tokens,
		mailer:            mailer,
		otp:               otp,
		logger:            logger.With("module", "accounts", "kind", kind),
		jwtSecret:         []byte(opts.SecretKey),
		sessionTTL:        opts.SessionTTL,
		tokenTTL:          opts.TokenTTL,
		emergencyContacts: opts.EmergencyContacts,
		profileEdits:      opts.ProfileEdits,
		now:               time.Now,
		bcryptCost:        bcrypt.DefaultCost,
	}
}

func (s *Service) Kind() string { return s.kind }

// SessionTTL is the lifetime of the tokens IssueSession mints.
func (s *Service) SessionTTL() time.Duration { return s.sessionTTL }

// Registration is the input of Register.
type Registration struct {
	Name                     string
	Email                    string
	Password                 string
	DateOfBirth              string
	EmergencyRecoveryContact string
}

// Register creates an unverified account and mails a verification link.
// Mail failures are logged, not returned.
func (s *Service) Register(ctx context.Context, r Registration) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	a := &Account{
		Email:        strings.TrimSpace(r.Email),
		Name:         strings.TrimSpace(r.Name),
		PasswordHash: hash,
		DateOfBirth:  r.DateOfBirth,
	}
	if s.emergencyContacts {
		a.EmergencyRecoveryContact = r.EmergencyRecoveryContact
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "registered", "id", created.ID)

	s.sendVerification(ctx, created)
	return created, nil
}

// LoginResult is the outcome of a password check. Account is nil when a
// one-time code was mailed instead.
type LoginResult struct {
	Account           *Account
	TwoFactorRequired bool
}

// Login checks the password. Unknown emails and wrong passwords both yield
// common.ErrorUnauthorized. Two-factor accounts get a code by mail and must
// finish with VerifyOTP.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	if !a.TwoFactorEnabled() {
		return &LoginResult{Account: a}, nil
	}

	code, err := s.otp.Code(a.TwoFactorSecret, s.now())
	if err != nil {
		return nil, fmt.Errorf("generating one-time code: %w", err)
	}
	if err := s.mailer.SendOTP(ctx, a.Email, code); err != nil {
		return nil, fmt.Errorf("sending one-time code: %w", err)
	}
	return &LoginResult{TwoFactorRequired: true}, nil
}

// VerifyOTP finishes a two-factor login.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) (*Account, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidOTP
		}
		return nil, common.ErrorInternal
	}
	if !a.TwoFactorEnabled() || !s.otp.Validate(a.TwoFactorSecret, code, s.now()) {
		return nil, common.ErrInvalidOTP
	}
	return a, nil
}

// IssueSession mints the session token for a.
func (s *Service) IssueSession(a *Account) (string, error) {
	return auth.GenerateToken(a.ID, s.kind, s.jwtSecret, s.sessionTTL)
}

// Authenticate resolves a session token to its account. Tokens of deleted
// accounts are rejected with common.ErrorUnauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (*Account, error) {
	id, err := auth.ParseToken(token, s.kind, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return a, nil
}

// ProfileChanges is a partial profile update. Nil fields stay as they are;
// an empty Password keeps the current one.
type ProfileChanges struct {
	Name                     *string
	Email                    *string
	DateOfBirth              *string
	EmergencyRecoveryContact *string
	Password                 string
}

// UpdateProfile applies c to account id. Fields the kind does not allow
// fail with common.ErrUnsupportedField. A new email needs verifying again.
func (s *Service) UpdateProfile(ctx context.Context, id string, c ProfileChanges) (*Account, error) {
	if !s.profileEdits && (c.Name != nil || c.Email != nil || c.DateOfBirth != nil || c.EmergencyRecoveryContact != nil) {
		return nil, common.ErrUnsupportedField
	}
	if !s.emergencyContacts && c.EmergencyRecoveryContact != nil {
		return nil, common.ErrUnsupportedField
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emailChanged := false
	if c.Name != nil {
		a.Name = strings.TrimSpace(*c.Name)
	}
	if c.Email != nil && !strings.EqualFold(a.Email, strings.TrimSpace(*c.Email)) {
		a.Email = strings.TrimSpace(*c.Email)
		a.Verified = false
		emailChanged = true
	}
	if c.DateOfBirth != nil {
		a.DateOfBirth = *c.DateOfBirth
	}
	if c.EmergencyRecoveryContact != nil {
		a.EmergencyRecoveryContact = *c.EmergencyRecoveryContact
	}
	if c.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		a.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	if emailChanged {
		s.sendVerification(ctx, a)
	}
	return a, nil
}

// Delete removes the account and its outstanding tokens.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.tokens.DeleteForAccount(ctx, id)
}

// SetTwoFactor turns emailed login codes on or off. Enabling an account
// that already has it keeps the existing secret.
func (s *Service) SetTwoFactor(ctx context.Context, id string, enabled bool) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	switch {
	case enabled && !a.TwoFactorEnabled():
		secret, err := s.otp.GenerateSecret(a.Email)
		if err != nil {
			return fmt.Errorf("generating two-factor secret: %w", err)
		}
		a.TwoFactorSecret = secret
	case !enabled:
		a.TwoFactorSecret = ""
	default:
		return nil
	}
	return s.repo.Update(ctx, a)
}

// VerifyEmail redeems a verification token.
func (s *Service) VerifyEmail(ctx context.Context, token string) (*Account, error) {
	t, err := s.tokens.Take(ctx, token, PurposeVerifyEmail)
	if err != nil {
		return nil, err
	}
	a, err := s.repo.GetByID(ctx, t.AccountID)
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	a.Verified = true
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ResendVerification mails a new link to an unverified account. Unknown
// and already verified emails are ignored so callers cannot probe for
// accounts.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return common.ErrorInternal
	}
	if a.Verified {
		return nil
	}
	s.sendVerification(ctx, a)
	return nil
}

// ForgotPassword mails a reset link when the account exists.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return common.ErrorInternal
	}

	t, err := s.tokens.Create(ctx, a.ID, PurposeResetPassword, s.tokenTTL)
	if err != nil {
		return fmt.Errorf("creating reset token: %w", err)
	}
	if err := s.mailer.SendPasswordReset(ctx, s.kind, a.Email, t.Value); err != nil {
		s.logger.Error(ctx, "reset email failed", "id", a.ID, "error", err.Error())
	}
	return nil
}

// ResetPassword sets a new password with a reset token.
func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	t, err := s.tokens.Take(ctx, token, PurposeResetPassword)
	if err != nil {
		return err
	}
	_, err = s.UpdatePassword(ctx, t.AccountID, password)
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrInvalidToken
	}
	return err
}

// UpdatePassword replaces the password of account id.
func (s *Service) UpdatePassword(ctx context.Context, id, password string) (*Account, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	a.PasswordHash = hash
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) sendVerification(ctx context.Context, a *Account) {
	t, err := s.tokens.Create(ctx, a.ID, PurposeVerifyEmail, s.tokenTTL)
	if err != nil {
		s.logger.Error(ctx, "verification token failed", "id", a.ID, "error", err.Error())
		return
	}
	if err := s.mailer.SendVerification(ctx, s.kind, a.Email, t.Value); err != nil {
		s.logger.Error(ctx, "verification email failed", "id", a.ID, "error", err.Error())
	}
}
