package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayadevraha/devraha/internal/client/forms"
	"github.com/dayadevraha/devraha/internal/client/models"
)

func (a *App) register(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)

	var f forms.SignUp
	var err error
	if f.Name, err = a.ask("Enter name"); err != nil {
		return err
	}
	if f.Email, err = a.ask("Enter email"); err != nil {
		return err
	}
	if f.Password, err = a.askSecret("Enter password"); err != nil {
		return err
	}
	if f.ConfirmPassword, err = a.askSecret("Confirm password"); err != nil {
		return err
	}
	if f.DateOfBirth, err = a.ask("Date of birth (YYYY-MM-DD, optional)"); err != nil {
		return err
	}
	if kind == models.KindUser {
		if f.EmergencyRecoveryContact, err = a.ask("Emergency recovery contact (optional)"); err != nil {
			return err
		}
	}
	if err := forms.Validate(f); err != nil {
		return err
	}

	if err := a.store.For(kind).Register(ctx, f.Request()); err != nil {
		return err
	}
	a.printf("Welcome, %s! Check %s for a verification link.\n", f.Name, f.Email)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)

	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	password, err := a.askSecret("Enter password")
	if err != nil {
		return err
	}

	var form any = forms.UserLogin{Email: email, Password: password}
	if kind == models.KindAdmin {
		form = forms.AdminLogin{Email: email, Password: password}
	}
	if err := forms.Validate(form); err != nil {
		return err
	}

	res, err := a.store.For(kind).Login(ctx, email, password)
	if err != nil {
		return err
	}
	if !res.TwoFactorRequired {
		a.printSignedIn(kind)
		return nil
	}

	a.printf("A one-time code was sent to %s.\n", email)
	return a.otp(ctx, args)
}

func (a *App) otp(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)

	code, err := a.ask("Enter the 6-digit code")
	if err != nil {
		return err
	}
	f := forms.OTP{Code: code}
	if err := forms.Validate(f); err != nil {
		return err
	}

	if err := a.store.For(kind).VerifyOTP(ctx, f.Code); err != nil {
		return err
	}
	a.printSignedIn(kind)
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)

	if !a.store.Snapshot().Session(kind).Authenticated {
		return fmt.Errorf("no %s is signed in", kind)
	}
	err := a.store.For(kind).Logout(ctx)
	a.println("Signed out.")
	if err != nil {
		return fmt.Errorf("the server did not confirm the logout: %w", err)
	}
	return nil
}

func (a *App) printSignedIn(kind models.Kind) {
	sess := a.store.Snapshot().Session(kind)
	if sess.Subject == nil {
		return
	}
	a.printf("Signed in as %s (%s).\n", sess.Subject.Name, sess.Subject.Email)
	if !sess.EmailVerified {
		a.println("Your email is not verified yet. Use 'resend' to get a new link.")
	}
}

// requireSession returns the signed-in subject of kind.
func (a *App) requireSession(kind models.Kind) (*models.Subject, error) {
	sess := a.store.Snapshot().Session(kind)
	if !sess.Authenticated || sess.Subject == nil {
		return nil, errors.New("sign in first (use 'login" + kindSuffix(kind) + "')")
	}
	return sess.Subject, nil
}

func kindSuffix(kind models.Kind) string {
	if kind == models.KindAdmin {
		return " admin"
	}
	return ""
}
