package services

import (
	"context"

	"github.com/dayadevraha/devraha/internal/client/models"
)

// LoginResult tells the caller how a login settled.
type LoginResult struct {
	// TwoFactorRequired means no session was opened yet; the code sent to
	// the account's email must be passed to VerifyOTP.
	TwoFactorRequired bool
}

// KindActions are the store actions bound to one kind. Mutating actions
// clear the session's Err and mark it loading for their duration; on failure
// they record the message in Err and return the error.
type KindActions struct {
	store *AuthStore
	kind  models.Kind
}

func (a *KindActions) Kind() models.Kind {
	return a.kind
}

func (a *KindActions) start(ctx context.Context, action string, extra ...reducer) {
	a.store.dispatch(append([]reducer{begin(a.kind)}, extra...)...)
	a.store.logger.Debug(ctx, "auth action started", "kind", a.kind.String(), "action", action)
}

func (a *KindActions) succeed(rs ...reducer) {
	a.store.dispatch(append([]reducer{end(a.kind)}, rs...)...)
}

func (a *KindActions) fail(ctx context.Context, action string, err error, rs ...reducer) error {
	msg := errorMessage(a.kind, action, err)
	a.store.dispatch(append([]reducer{end(a.kind), failWith(a.kind, msg)}, rs...)...)
	a.store.logger.Warn(ctx, "auth action failed", "kind", a.kind.String(), "action", action, "error", err.Error())
	return err
}

// Register creates an account and signs it in. Admin registrations never
// carry an emergency recovery contact.
func (a *KindActions) Register(ctx context.Context, req models.RegisterRequest) error {
	if a.kind == models.KindAdmin {
		req.EmergencyRecoveryContact = ""
	}

	a.start(ctx, actionRegister)
	subj, err := a.store.api.Register(ctx, a.kind, req)
	if err != nil {
		return a.fail(ctx, actionRegister, err)
	}
	a.succeed(authenticate(a.kind, subj))
	return nil
}

// Login signs in with email and password. A new attempt abandons any
// earlier pending one-time-code challenge.
func (a *KindActions) Login(ctx context.Context, email, password string) (LoginResult, error) {
	a.start(ctx, actionLogin, clearPending(a.kind))
	resp, err := a.store.api.Login(ctx, a.kind, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return LoginResult{}, a.fail(ctx, actionLogin, err)
	}

	if resp.TwoFactorRequired {
		a.succeed(challenge(a.kind, email))
		return LoginResult{TwoFactorRequired: true}, nil
	}

	subj := resp.Subject
	a.succeed(authenticate(a.kind, &subj), clearPending(a.kind))
	return LoginResult{}, nil
}

// VerifyOTP completes a two-factor login. The email is the pending one or,
// without a pending login, the signed-in subject's; with neither it fails
// with ErrNoEmailForOTP before any request is made.
func (a *KindActions) VerifyOTP(ctx context.Context, code string) error {
	cur := a.store.Snapshot().Session(a.kind)
	email := cur.PendingEmail
	if email == "" && cur.Subject != nil {
		email = cur.Subject.Email
	}

	a.start(ctx, actionVerifyOTP)
	if email == "" {
		return a.fail(ctx, actionVerifyOTP, ErrNoEmailForOTP)
	}

	subj, err := a.store.api.VerifyOTP(ctx, a.kind, models.VerifyOTPRequest{Email: email, OTP: code})
	if err != nil {
		return a.fail(ctx, actionVerifyOTP, err)
	}
	a.succeed(authenticate(a.kind, subj), clearPending(a.kind))
	return nil
}

// Logout ends the session on the server. The local session is dropped
// whether or not the server call succeeds; a failure is still recorded and
// returned.
func (a *KindActions) Logout(ctx context.Context) error {
	a.start(ctx, actionLogout)
	if err := a.store.api.Logout(ctx, a.kind); err != nil {
		return a.fail(ctx, actionLogout, err, signOut(a.kind), clearPending(a.kind))
	}
	a.succeed(signOut(a.kind), clearPending(a.kind))
	return nil
}

// CheckAuth restores the session from the server's cookie. Failures only
// leave the session anonymous; CheckingAuth is false once it returns.
func (a *KindActions) CheckAuth(ctx context.Context) bool {
	a.store.dispatch(checking(a.kind, true))
	subj, err := a.store.api.ValidateToken(ctx, a.kind)
	if err != nil {
		a.store.dispatch(signOut(a.kind), checking(a.kind, false))
		a.store.logger.Debug(ctx, "no session to restore", "kind", a.kind.String(), "error", err.Error())
		return false
	}
	a.store.dispatch(authenticate(a.kind, subj), checking(a.kind, false))
	return true
}

// FetchProfile reloads the subject. It leaves Loading and Err alone; a
// failure signs the session out and marks the email unverified.
func (a *KindActions) FetchProfile(ctx context.Context) bool {
	subj, err := a.store.api.Profile(ctx, a.kind)
	if err != nil {
		a.store.dispatch(signOut(a.kind), setVerified(a.kind, false))
		a.store.logger.Debug(ctx, "profile fetch failed", "kind", a.kind.String(), "error", err.Error())
		return false
	}
	a.store.dispatch(authenticate(a.kind, subj))
	return true
}

// UpdateProfile sends a partial update. Users may only change their
// password; admins may change any field but the emergency contact. The
// subject the server answers with is merged into state; without one, the
// submitted fields are.
func (a *KindActions) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	a.start(ctx, actionUpdateProfile)
	switch {
	case upd.Empty():
		return a.fail(ctx, actionUpdateProfile, ErrEmptyUpdate)
	case a.kind == models.KindUser && upd.HasProfileFields(),
		a.kind == models.KindAdmin && upd.EmergencyRecoveryContact != nil:
		return a.fail(ctx, actionUpdateProfile, ErrProfileFieldsUnsupported)
	}

	subj, err := a.store.api.UpdateProfile(ctx, a.kind, upd)
	if err != nil {
		return a.fail(ctx, actionUpdateProfile, err)
	}

	if subj != nil {
		updated := *subj
		a.succeed(mergeSubject(a.kind, func(s *models.Subject) { *s = updated }), setVerified(a.kind, updated.IsVerified))
		return nil
	}
	a.succeed(mergeSubject(a.kind, upd.Apply))
	return nil
}

// UpdatePassword is UpdateProfile with only a new password.
func (a *KindActions) UpdatePassword(ctx context.Context, password string) error {
	return a.UpdateProfile(ctx, models.ProfileUpdate{Password: password})
}

func (a *KindActions) DeleteAccount(ctx context.Context) error {
	a.start(ctx, actionDeleteAccount)
	if err := a.store.api.DeleteAccount(ctx, a.kind); err != nil {
		return a.fail(ctx, actionDeleteAccount, err)
	}
	a.succeed(signOut(a.kind), clearPending(a.kind))
	return nil
}

// ToggleTwoFactor disables two-factor login when the subject has it on and
// enables it otherwise. Only the flag is patched locally; the server does
// not answer with a subject. It returns the new setting.
func (a *KindActions) ToggleTwoFactor(ctx context.Context) (bool, error) {
	cur := a.store.Snapshot().Session(a.kind).Subject
	enabled := cur != nil && cur.TwoFactorEnabled

	a.start(ctx, actionToggleTwoFactor)
	var err error
	if enabled {
		err = a.store.api.DisableTwoFactor(ctx, a.kind)
	} else {
		err = a.store.api.EnableTwoFactor(ctx, a.kind)
	}
	if err != nil {
		return enabled, a.fail(ctx, actionToggleTwoFactor, err)
	}

	a.succeed(mergeSubject(a.kind, func(s *models.Subject) { s.TwoFactorEnabled = !enabled }))
	return !enabled, nil
}

// VerifyEmail redeems an emailed verification token.
func (a *KindActions) VerifyEmail(ctx context.Context, token string) (bool, error) {
	a.start(ctx, actionVerifyEmail)
	verified, err := a.store.api.VerifyEmail(ctx, a.kind, token)
	if err != nil {
		return false, a.fail(ctx, actionVerifyEmail, err, setVerified(a.kind, false))
	}
	a.succeed(setVerified(a.kind, verified))
	return verified, nil
}

// RefreshVerificationStatus polls the server's verification flag. Failures
// count as unverified and are not returned.
func (a *KindActions) RefreshVerificationStatus(ctx context.Context) bool {
	verified, err := a.store.api.VerificationStatus(ctx, a.kind)
	if err != nil {
		a.store.logger.Debug(ctx, "verification status unavailable", "kind", a.kind.String(), "error", err.Error())
		verified = false
	}
	a.store.dispatch(setVerified(a.kind, verified))
	return verified
}

func (a *KindActions) ResendVerification(ctx context.Context, email string) (string, error) {
	return a.message(ctx, actionResendVerification, func() (string, error) {
		return a.store.api.ResendVerification(ctx, a.kind, email)
	})
}

func (a *KindActions) ForgotPassword(ctx context.Context, email string) (string, error) {
	return a.message(ctx, actionForgotPassword, func() (string, error) {
		return a.store.api.ForgotPassword(ctx, a.kind, email)
	})
}

func (a *KindActions) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error) {
	return a.message(ctx, actionResetPassword, func() (string, error) {
		return a.store.api.ResetPassword(ctx, a.kind, req)
	})
}

// message runs a call whose only result is the server's message.
func (a *KindActions) message(ctx context.Context, action string, call func() (string, error)) (string, error) {
	a.start(ctx, action)
	msg, err := call()
	if err != nil {
		return "", a.fail(ctx, action, err)
	}
	a.succeed()
	return msg, nil
}
