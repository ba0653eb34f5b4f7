package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dayadevraha/devraha/internal/common"
	"github.com/dayadevraha/devraha/internal/server/accounts"
)

// handler serves the endpoints of one kind.
type handler struct {
	svc           *accounts.Service
	secureCookies bool
}

func (h *handler) cookieName() string {
	return h.svc.Kind() + "_session"
}

func (h *handler) setSession(c echo.Context, a *accounts.Account) error {
	token, err := h.svc.IssueSession(a)
	if err != nil {
		return err
	}
	ttl := h.svc.SessionTTL()
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName(),
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (h *handler) clearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func (h *handler) register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	a, err := h.svc.Register(c.Request().Context(), accounts.Registration{
		Name:                     req.Name,
		Email:                    req.Email,
		Password:                 req.Password,
		DateOfBirth:              req.DateOfBirth,
		EmergencyRecoveryContact: req.EmergencyRecoveryContact,
	})
	if err != nil {
		return err
	}
	if err := h.setSession(c, a); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, response{Data: subject(a), Message: "Registration successful. Please verify your email."})
}

// loginData is the data of a login answer.
type loginData struct {
	*accountData
	TwoFactorRequired bool `json:"twoFactorRequired"`
}

func (h *handler) login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		return err
	}
	if res.TwoFactorRequired {
		return c.JSON(http.StatusOK, response{
			Data:    loginData{TwoFactorRequired: true},
			Message: "OTP sent to your email",
		})
	}

	if err := h.setSession(c, res.Account); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: loginData{accountData: subject(res.Account)}, Message: "Login successful"})
}

func (h *handler) verifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	a, err := h.svc.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return err
	}
	if err := h.setSession(c, a); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: subject(a), Message: "Login successful"})
}

func (h *handler) logout(c echo.Context) error {
	h.clearSession(c)
	return c.JSON(http.StatusOK, response{Message: "Logged out"})
}

func (h *handler) validateToken(c echo.Context) error {
	a, err := currentAccount(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: subject(a)})
}

func (h *handler) profile(c echo.Context) error {
	a, err := currentAccount(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: subject(a)})
}

func (h *handler) updateProfile(c echo.Context) error {
	a, err := currentAccount(c)
	if err != nil {
		return err
	}
	var req updateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "Nothing to update")
	}

	updated, err := h.svc.UpdateProfile(c.Request().Context(), a.ID, req.changes())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: subject(updated), Message: "Profile updated"})
}

func (h *handler) deleteAccount(c echo.Context) error {
	a, err := currentAccount(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), a.ID); err != nil {
		return err
	}
	h.clearSession(c)
	return c.JSON(http.StatusOK, response{Message: "Account deleted"})
}

func (h *handler) enableTwoFactor(c echo.Context) error {
	return h.setTwoFactor(c, true, "Two-factor authentication enabled")
}

func (h *handler) disableTwoFactor(c echo.Context) error {
	return h.setTwoFactor(c, false, "Two-factor authentication disabled")
}

func (h *handler) setTwoFactor(c echo.Context, enabled bool, msg string) error {
	a, err := currentAccount(c)
	if err != nil {
		return err
	}
	if err := h.svc.SetTwoFactor(c.Request().Context(), a.ID, enabled); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Message: msg})
}

func (h *handler) verifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Verification token is required")
	}
	if _, err := h.svc.VerifyEmail(c.Request().Context(), token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: verificationData{Verified: true}, Message: "Email verified"})
}

func (h *handler) verificationStatus(c echo.Context) error {
	a, err := currentAccount(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: verificationData{Verified: a.Verified}})
}

func (h *handler) resendVerification(c echo.Context) error {
	var req emailRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.ResendVerification(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Message: "If the email is registered and unverified, a verification link was sent"})
}

func (h *handler) forgotPassword(c echo.Context) error {
	var req emailRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Message: "If the email is registered, a reset link was sent"})
}

func (h *handler) resetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Message: "Password has been reset"})
}
