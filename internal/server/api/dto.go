package api

import (
	"github.com/dayadevraha/devraha/internal/server/accounts"
)

type registerRequest struct {
	Name                     string `json:"name" validate:"required,min=3"`
	Email                    string `json:"email" validate:"required,email"`
	Password                 string `json:"password" validate:"required,min=6"`
	ConfirmPassword          string `json:"confirmPassword" validate:"required,eqfield=Password"`
	DateOfBirth              string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	EmergencyRecoveryContact string `json:"emergencyRecoveryContact" validate:"omitempty,max=120"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,numeric,len=6"`
}

type updateProfileRequest struct {
	Name                     *string `json:"name" validate:"omitempty,min=3"`
	Email                    *string `json:"email" validate:"omitempty,email"`
	DateOfBirth              *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	EmergencyRecoveryContact *string `json:"emergencyRecoveryContact" validate:"omitempty,max=120"`
	Password                 string  `json:"password" validate:"omitempty,min=6"`
}

func (r updateProfileRequest) empty() bool {
	return r.Name == nil && r.Email == nil && r.DateOfBirth == nil && r.EmergencyRecoveryContact == nil && r.Password == ""
}

func (r updateProfileRequest) changes() accounts.ProfileChanges {
	return accounts.ProfileChanges{
		Name:                     r.Name,
		Email:                    r.Email,
		DateOfBirth:              r.DateOfBirth,
		EmergencyRecoveryContact: r.EmergencyRecoveryContact,
		Password:                 r.Password,
	}
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// response is the answer envelope; the client decodes the same shape.
type response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// accountData is the public view of an account.
type accountData struct {
	ID                       string `json:"id"`
	Email                    string `json:"email"`
	Name                     string `json:"name"`
	IsVerified               bool   `json:"isVerified"`
	TwoFactorEnabled         bool   `json:"twoFactorEnabled"`
	DateOfBirth              string `json:"dateOfBirth,omitempty"`
	EmergencyRecoveryContact string `json:"emergencyRecoveryContact,omitempty"`
}

type verificationData struct {
	Verified bool `json:"verified"`
}

func subject(a *accounts.Account) *accountData {
	return &accountData{
		ID:                       a.ID,
		Email:                    a.Email,
		Name:                     a.Name,
		IsVerified:               a.Verified,
		TwoFactorEnabled:         a.TwoFactorEnabled(),
		DateOfBirth:              a.DateOfBirth,
		EmergencyRecoveryContact: a.EmergencyRecoveryContact,
	}
}
