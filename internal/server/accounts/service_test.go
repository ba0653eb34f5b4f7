package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayadevraha/devraha/internal/common"
	"github.com/dayadevraha/devraha/internal/logging"
)

func newTestService(t *testing.T, kind string) (*Service, *captureMailer) {
	t.Helper()
	mailer := &captureMailer{}
	s := NewService(kind, NewMemoryRepository(), NewMemoryTokenRepository(), mailer, NewTOTPProvider("test"), logging.Nop(), Options{
		SecretKey:         "secret",
		SessionTTL:        time.Hour,
		TokenTTL:          time.Hour,
		EmergencyContacts: kind == "user",
		ProfileEdits:      kind == "admin",
	})
	s.bcryptCost = bcrypt.MinCost
	return s, mailer
}

func register(t *testing.T, s *Service, email string) *Account {
	t.Helper()
	a, err := s.Register(context.Background(), Registration{
		Name:                     "Sita",
		Email:                    email,
		Password:                 "secret1",
		EmergencyRecoveryContact: "Ram 555",
	})
	require.NoError(t, err)
	return a
}

func TestRegister(t *testing.T) {
	s, mailer := newTestService(t, "user")

	a := register(t, s, "sita@example.com")
	assert.False(t, a.Verified)
	assert.Equal(t, "Ram 555", a.EmergencyRecoveryContact)
	assert.NotEqual(t, []byte("secret1"), a.PasswordHash)

	mail, ok := mailer.last("verify")
	require.True(t, ok)
	assert.Equal(t, "user", mail.Kind)
	assert.Equal(t, "sita@example.com", mail.To)

	_, err := s.Register(context.Background(), Registration{Email: "SITA@example.com", Password: "secret1"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_AdminDropsEmergencyContact(t *testing.T) {
	s, _ := newTestService(t, "admin")
	a := register(t, s, "admin@example.com")
	assert.Empty(t, a.EmergencyRecoveryContact)
}

func TestLogin(t *testing.T) {
	s, _ := newTestService(t, "user")
	ctx := context.Background()
	a := register(t, s, "sita@example.com")

	res, err := s.Login(ctx, "sita@example.com", "secret1")
	require.NoError(t, err)
	assert.False(t, res.TwoFactorRequired)
	assert.Equal(t, a.ID, res.Account.ID)

	_, err = s.Login(ctx, "sita@example.com", "wrong")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = s.Login(ctx, "nobody@example.com", "secret1")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_TwoFactor(t *testing.T) {
	s, mailer := newTestService(t, "admin")
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	a := register(t, s, "admin@example.com")
	require.NoError(t, s.SetTwoFactor(ctx, a.ID, true))

	res, err := s.Login(ctx, "admin@example.com", "secret1")
	require.NoError(t, err)
	assert.True(t, res.TwoFactorRequired)
	assert.Nil(t, res.Account)

	mail, ok := mailer.last("otp")
	require.True(t, ok)
	assert.Len(t, mail.Code, 6)

	wrong := "000000"
	if mail.Code == wrong {
		wrong = "111111"
	}
	_, err = s.VerifyOTP(ctx, "admin@example.com", wrong)
	require.ErrorIs(t, err, common.ErrInvalidOTP)
	_, err = s.VerifyOTP(ctx, "nobody@example.com", mail.Code)
	require.ErrorIs(t, err, common.ErrInvalidOTP)

	got, err := s.VerifyOTP(ctx, "admin@example.com", mail.Code)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
}

func TestSetTwoFactor(t *testing.T) {
	s, _ := newTestService(t, "user")
	ctx := context.Background()
	a := register(t, s, "sita@example.com")

	require.NoError(t, s.SetTwoFactor(ctx, a.ID, true))
	on, err := s.repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, on.TwoFactorEnabled())

	require.NoError(t, s.SetTwoFactor(ctx, a.ID, true))
	again, err := s.repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, on.TwoFactorSecret, again.TwoFactorSecret)

	require.NoError(t, s.SetTwoFactor(ctx, a.ID, false))
	off, err := s.repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, off.TwoFactorEnabled())

	_, err = s.VerifyOTP(ctx, "sita@example.com", "123456")
	require.ErrorIs(t, err, common.ErrInvalidOTP)
}

func TestSessions(t *testing.T) {
	s, _ := newTestService(t, "user")
	admin, _ := newTestService(t, "admin")
	ctx := context.Background()
	a := register(t, s, "sita@example.com")

	tok, err := s.IssueSession(a)
	require.NoError(t, err)

	got, err := s.Authenticate(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = admin.Authenticate(ctx, tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)

	require.NoError(t, s.Delete(ctx, a.ID))
	_, err = s.Authenticate(ctx, tok)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUpdateProfile_User(t *testing.T) {
	s, _ := newTestService(t, "user")
	ctx := context.Background()
	a := register(t, s, "sita@example.com")

	name := "Sita Devi"
	_, err := s.UpdateProfile(ctx, a.ID, ProfileChanges{Name: &name})
	require.ErrorIs(t, err, common.ErrUnsupportedField)

	_, err = s.UpdateProfile(ctx, a.ID, ProfileChanges{Password: "newpass1"})
	require.NoError(t, err)

	_, err = s.Login(ctx, "sita@example.com", "secret1")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = s.Login(ctx, "sita@example.com", "newpass1")
	require.NoError(t, err)
}

func TestUpdateProfile_Admin(t *testing.T) {
	s, mailer := newTestService(t, "admin")
	ctx := context.Background()
	a := register(t, s, "admin@example.com")

	contact := "Ram"
	_, err := s.UpdateProfile(ctx, a.ID, ProfileChanges{EmergencyRecoveryContact: &contact})
	require.ErrorIs(t, err, common.ErrUnsupportedField)

	name, email, dob := "Chief", "chief@example.com", "1980-02-03"
	before := mailer.count("verify")
	got, err := s.UpdateProfile(ctx, a.ID, ProfileChanges{Name: &name, Email: &email, DateOfBirth: &dob})
	require.NoError(t, err)
	assert.Equal(t, "Chief", got.Name)
	assert.Equal(t, "chief@example.com", got.Email)
	assert.Equal(t, "1980-02-03", got.DateOfBirth)
	assert.False(t, got.Verified)
	assert.Equal(t, before+1, mailer.count("verify"))

	_, err = s.UpdateProfile(ctx, "missing", ProfileChanges{Name: &name})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestVerifyEmail(t *testing.T) {
	s, mailer := newTestService(t, "user")
	ctx := context.Background()
	a := register(t, s, "sita@example.com")

	mail, _ := mailer.last("verify")
	got, err := s.VerifyEmail(ctx, mail.Token)
	require.NoError(t, err)
	assert.True(t, got.Verified)
	assert.Equal(t, a.ID, got.ID)

	_, err = s.VerifyEmail(ctx, mail.Token)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestResendVerification(t *testing.T) {
	s, mailer := newTestService(t, "user")
	ctx := context.Background()
	register(t, s, "sita@example.com")

	require.NoError(t, s.ResendVerification(ctx, "sita@example.com"))
	assert.Equal(t, 2, mailer.count("verify"))

	require.NoError(t, s.ResendVerification(ctx, "nobody@example.com"))
	assert.Equal(t, 2, mailer.count("verify"))

	mail, _ := mailer.last("verify")
	_, err := s.VerifyEmail(ctx, mail.Token)
	require.NoError(t, err)
	require.NoError(t, s.ResendVerification(ctx, "sita@example.com"))
	assert.Equal(t, 2, mailer.count("verify"), "verified accounts get no more links")
}

func TestForgotAndResetPassword(t *testing.T) {
	s, mailer := newTestService(t, "user")
	ctx := context.Background()
	register(t, s, "sita@example.com")

	require.NoError(t, s.ForgotPassword(ctx, "nobody@example.com"))
	assert.Zero(t, mailer.count("reset"))

	require.NoError(t, s.ForgotPassword(ctx, "sita@example.com"))
	mail, ok := mailer.last("reset")
	require.True(t, ok)

	require.ErrorIs(t, s.ResetPassword(ctx, "bogus", "newpass1"), common.ErrInvalidToken)
	require.NoError(t, s.ResetPassword(ctx, mail.Token, "newpass1"))
	require.ErrorIs(t, s.ResetPassword(ctx, mail.Token, "again12"), common.ErrInvalidToken)

	_, err := s.Login(ctx, "sita@example.com", "newpass1")
	require.NoError(t, err)
}

func TestDelete_DropsTokens(t *testing.T) {
	s, mailer := newTestService(t, "user")
	ctx := context.Background()
	a := register(t, s, "sita@example.com")

	mail, _ := mailer.last("verify")
	require.NoError(t, s.Delete(ctx, a.ID))
	_, err := s.VerifyEmail(ctx, mail.Token)
	require.ErrorIs(t, err, common.ErrInvalidToken)
	require.ErrorIs(t, s.Delete(ctx, a.ID), common.ErrorNotFound)
}
