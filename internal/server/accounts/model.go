package accounts

import "time"

// Account kinds. Each kind has its own service, routes and session cookie.
const (
	KindUser  = "user"
	KindAdmin = "admin"
)

// Kinds lists every kind the sandbox serves.
var Kinds = []string{KindUser, KindAdmin}

// Account is one stored user or admin.
type Account struct {
	ID                       string
	Email                    string
	Name                     string
	PasswordHash             []byte
	Verified                 bool
	TwoFactorSecret          string
	DateOfBirth              string
	EmergencyRecoveryContact string
	CreatedAt                time.Time
}

// TwoFactorEnabled reports whether logins need a one-time code.
func (a *Account) TwoFactorEnabled() bool {
	return a.TwoFactorSecret != ""
}

// Clone returns a copy that shares nothing with a.
func (a *Account) Clone() *Account {
	c := *a
	c.PasswordHash = append([]byte(nil), a.PasswordHash...)
	return &c
}

// Purpose tells emailed tokens apart.
type Purpose string

const (
	PurposeVerifyEmail   Purpose = "verify-email"
	PurposeResetPassword Purpose = "reset-password"
)

// Token is a single-use emailed token.
type Token struct {
	Value     string
	AccountID string
	Purpose   Purpose
	Expires   time.Time
}
