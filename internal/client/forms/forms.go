package forms

import "github.com/dayadevraha/devraha/internal/client/models"

type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AdminLogin signs in by email, like the user form; the API uses the same
// field for both kinds.
type AdminLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignUp struct {
	Name                     string `json:"name" validate:"required,min=3"`
	Email                    string `json:"email" validate:"required,email"`
	Password                 string `json:"password" validate:"required,min=6"`
	ConfirmPassword          string `json:"confirmPassword" validate:"required,eqfield=Password"`
	DateOfBirth              string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	EmergencyRecoveryContact string `json:"emergencyRecoveryContact" validate:"omitempty,max=120"`
}

func (f SignUp) Request() models.RegisterRequest {
	return models.RegisterRequest{
		Name:                     f.Name,
		Email:                    f.Email,
		Password:                 f.Password,
		ConfirmPassword:          f.ConfirmPassword,
		DateOfBirth:              f.DateOfBirth,
		EmergencyRecoveryContact: f.EmergencyRecoveryContact,
	}
}

type OTP struct {
	Code string `json:"otp" validate:"required,numeric,len=6"`
}

type ResetPassword struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

func (f ResetPassword) Request() models.ResetPasswordRequest {
	return models.ResetPasswordRequest{
		Token:           f.Token,
		NewPassword:     f.NewPassword,
		ConfirmPassword: f.ConfirmPassword,
	}
}

// NewPassword is the change-password form of a signed-in subject.
type NewPassword struct {
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type Email struct {
	Email string `json:"email" validate:"required,email"`
}

// Profile is the admin profile edit form. Blank fields are left unchanged.
type Profile struct {
	Name        string `json:"name" validate:"omitempty,min=3"`
	Email       string `json:"email" validate:"omitempty,email"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
}

// Update turns the non-blank fields into a partial update.
func (f Profile) Update() models.ProfileUpdate {
	var u models.ProfileUpdate
	if f.Name != "" {
		u.Name = &f.Name
	}
	if f.Email != "" {
		u.Email = &f.Email
	}
	if f.DateOfBirth != "" {
		u.DateOfBirth = &f.DateOfBirth
	}
	return u
}
