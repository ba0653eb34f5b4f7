package services

import (
	"errors"
	"fmt"

	"github.com/dayadevraha/devraha/internal/client/client"
	"github.com/dayadevraha/devraha/internal/client/models"
)

var (
	// ErrNoEmailForOTP is returned by VerifyOTP when neither a signed-in
	// subject nor a pending login supplies the email to verify.
	ErrNoEmailForOTP = errors.New("no email available for OTP verification")
	// ErrProfileFieldsUnsupported is returned when an update touches fields
	// the kind cannot change (users may only change their password).
	ErrProfileFieldsUnsupported = errors.New("profile fields cannot be changed for this account kind")
	ErrEmptyUpdate              = errors.New("nothing to update")
)

const (
	actionRegister           = "register"
	actionLogin              = "login"
	actionVerifyOTP          = "verify-otp"
	actionLogout             = "logout"
	actionUpdateProfile      = "update-profile"
	actionDeleteAccount      = "delete-account"
	actionToggleTwoFactor    = "toggle-two-factor"
	actionVerifyEmail        = "verify-email"
	actionResendVerification = "resend-verification"
	actionForgotPassword     = "forgot-password"
	actionResetPassword      = "reset-password"
)

func defaultMessage(kind models.Kind, action string) string {
	switch action {
	case actionRegister:
		return fmt.Sprintf("Error registering %s", kind)
	case actionLogin:
		return fmt.Sprintf("Error logging in %s", kind)
	case actionVerifyOTP:
		return "Error verifying OTP"
	case actionLogout:
		return fmt.Sprintf("Error logging out %s", kind)
	case actionUpdateProfile:
		return fmt.Sprintf("Error updating %s profile", kind)
	case actionDeleteAccount:
		return fmt.Sprintf("Error deleting %s account", kind)
	case actionToggleTwoFactor:
		return "Error toggling two-factor authentication"
	case actionVerifyEmail:
		return "Error verifying email"
	case actionResendVerification:
		return "Error resending verification email"
	case actionForgotPassword:
		return "Error sending password reset email"
	case actionResetPassword:
		return "Error resetting password"
	default:
		return "Something went wrong"
	}
}

// errorMessage picks the text recorded in Session.Err: the API's own
// message when it sent one, the text of a local precondition error, and the
// per-action default otherwise.
func errorMessage(kind models.Kind, action string, err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
	case errors.Is(err, ErrNoEmailForOTP),
		errors.Is(err, ErrProfileFieldsUnsupported),
		errors.Is(err, ErrEmptyUpdate):
		return err.Error()
	}
	return defaultMessage(kind, action)
}
