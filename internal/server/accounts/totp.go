package accounts

import (
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTPProvider mints and checks the one-time login codes. Codes are mailed
// rather than read from an authenticator app, so the period is long.
type TOTPProvider struct {
	Issuer    string
	Period    uint
	Skew      uint
	Digits    otp.Digits
	Algorithm otp.Algorithm
}

func NewTOTPProvider(issuer string) *TOTPProvider {
	return &TOTPProvider{
		Issuer:    issuer,
		Period:    300,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// GenerateSecret returns a fresh base32 secret for accountName.
func (p *TOTPProvider) GenerateSecret(accountName string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      fallbackIssuer(p.Issuer),
		AccountName: accountName,
		Period:      p.Period,
		Digits:      p.Digits,
		Algorithm:   p.Algorithm,
	})
	if err != nil {
		return "", err
	}
	return key.Secret(), nil
}

// Code returns the code valid for secret at t.
func (p *TOTPProvider) Code(secret string, t time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, t, p.opts())
}

// Validate reports whether code matches secret around t.
func (p *TOTPProvider) Validate(secret, code string, t time.Time) bool {
	ok, err := totp.ValidateCustom(code, secret, t, p.opts())
	return err == nil && ok
}

func (p *TOTPProvider) opts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    p.Period,
		Skew:      p.Skew,
		Digits:    p.Digits,
		Algorithm: p.Algorithm,
	}
}

func fallbackIssuer(issuer string) string {
	if strings.TrimSpace(issuer) == "" {
		return "DAYA Devraha"
	}
	return issuer
}
