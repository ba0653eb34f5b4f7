package models

// RegisterRequest is the body of POST /{kind}/register.
type RegisterRequest struct {
	Name                     string `json:"name"`
	Email                    string `json:"email"`
	Password                 string `json:"password"`
	ConfirmPassword          string `json:"confirmPassword"`
	DateOfBirth              string `json:"dateOfBirth,omitempty"`
	EmergencyRecoveryContact string `json:"emergencyRecoveryContact,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the data of a login answer. When TwoFactorRequired is set
// the subject fields are not meaningful and no session cookie was issued.
type LoginResponse struct {
	Subject
	TwoFactorRequired bool `json:"twoFactorRequired"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ProfileUpdate is a partial profile change. Nil fields are left untouched;
// an empty Password keeps the current one.
type ProfileUpdate struct {
	Name                     *string `json:"name,omitempty"`
	Email                    *string `json:"email,omitempty"`
	DateOfBirth              *string `json:"dateOfBirth,omitempty"`
	EmergencyRecoveryContact *string `json:"emergencyRecoveryContact,omitempty"`
	Password                 string  `json:"password,omitempty"`
}

// HasProfileFields reports whether u changes anything besides the password.
func (u ProfileUpdate) HasProfileFields() bool {
	return u.Name != nil || u.Email != nil || u.DateOfBirth != nil || u.EmergencyRecoveryContact != nil
}

// Empty reports whether u changes nothing at all.
func (u ProfileUpdate) Empty() bool {
	return !u.HasProfileFields() && u.Password == ""
}

// Apply copies the set profile fields of u onto s.
func (u ProfileUpdate) Apply(s *Subject) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.DateOfBirth != nil {
		s.DateOfBirth = *u.DateOfBirth
	}
	if u.EmergencyRecoveryContact != nil {
		s.EmergencyRecoveryContact = *u.EmergencyRecoveryContact
	}
}

type EmailRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Verification is the data of GET verify-email and verification-status.
type Verification struct {
	Verified bool `json:"verified"`
}
