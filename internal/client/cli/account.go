package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dayadevraha/devraha/internal/client/forms"
	"github.com/dayadevraha/devraha/internal/client/models"
)

var errNotConfirmed = errors.New("not confirmed, nothing changed")

func (a *App) whoami(ctx context.Context, _ []string) error {
	st := a.store.Snapshot()
	for _, kind := range models.Kinds {
		sess := st.Session(kind)
		switch {
		case sess.Authenticated:
			a.printf("%-5s  %s <%s>\n", kind, sess.Subject.Name, sess.Subject.Email)
		case sess.PendingEmail != "":
			a.printf("%-5s  waiting for the code sent to %s\n", kind, sess.PendingEmail)
		default:
			a.printf("%-5s  not signed in\n", kind)
		}
	}
	return nil
}

func (a *App) showStatus(ctx context.Context, _ []string) error {
	st := a.store.Snapshot()
	for _, kind := range models.Kinds {
		sess := st.Session(kind)
		a.printf("%-5s  authenticated=%t verified=%t loading=%t checking=%t\n",
			kind, sess.Authenticated, sess.EmailVerified, sess.Loading, sess.CheckingAuth)
		if sess.Err != "" {
			a.printf("       last error: %s\n", sess.Err)
		}
	}
	return nil
}

func (a *App) profile(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)
	actions := a.store.For(kind)

	if !actions.FetchProfile(ctx) {
		return fmt.Errorf("no %s session; sign in first", kind)
	}
	actions.RefreshVerificationStatus(ctx)

	s := a.store.Snapshot().Session(kind).Subject
	if s == nil {
		return fmt.Errorf("no %s session; sign in first", kind)
	}
	a.printf("Name:        %s\n", s.Name)
	a.printf("Email:       %s\n", s.Email)
	a.printf("Verified:    %s\n", yesNo(s.IsVerified))
	a.printf("Two-factor:  %s\n", onOff(s.TwoFactorEnabled))
	if s.DateOfBirth != "" {
		a.printf("Born:        %s\n", s.DateOfBirth)
	}
	if s.EmergencyRecoveryContact != "" {
		a.printf("Emergency:   %s\n", s.EmergencyRecoveryContact)
	}
	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)
	if kind != models.KindAdmin {
		return errors.New("user profiles only allow a password change; use 'password'")
	}
	if _, err := a.requireSession(kind); err != nil {
		return err
	}

	var f forms.Profile
	var err error
	if f.Name, err = a.ask("New name (blank keeps the current one)"); err != nil {
		return err
	}
	if f.Email, err = a.ask("New email (blank keeps the current one)"); err != nil {
		return err
	}
	if f.DateOfBirth, err = a.ask("Date of birth YYYY-MM-DD (blank keeps the current one)"); err != nil {
		return err
	}
	if err := forms.Validate(f); err != nil {
		return err
	}

	upd := f.Update()
	if upd.Empty() {
		a.println("Nothing to change.")
		return nil
	}
	if err := a.store.For(kind).UpdateProfile(ctx, upd); err != nil {
		return err
	}
	a.println("Profile updated.")
	return nil
}

func (a *App) password(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)
	if _, err := a.requireSession(kind); err != nil {
		return err
	}

	var f forms.NewPassword
	var err error
	if f.Password, err = a.askSecret("New password"); err != nil {
		return err
	}
	if f.ConfirmPassword, err = a.askSecret("Confirm new password"); err != nil {
		return err
	}
	if err := forms.Validate(f); err != nil {
		return err
	}

	if err := a.store.For(kind).UpdatePassword(ctx, f.Password); err != nil {
		return err
	}
	a.println("Password changed.")
	return nil
}

func (a *App) twoFactor(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)
	if _, err := a.requireSession(kind); err != nil {
		return err
	}

	on, err := a.store.For(kind).ToggleTwoFactor(ctx)
	if err != nil {
		return err
	}
	a.printf("Two-factor sign-in is now %s.\n", onOff(on))
	return nil
}

func (a *App) deleteAccount(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)
	s, err := a.requireSession(kind)
	if err != nil {
		return err
	}

	answer, err := a.ask(fmt.Sprintf("Delete the %s account %s for good? Type DELETE to confirm", kind, s.Email))
	if err != nil {
		return err
	}
	if strings.TrimSpace(answer) != "DELETE" {
		return errNotConfirmed
	}

	if err := a.store.For(kind).DeleteAccount(ctx); err != nil {
		return err
	}
	a.println("Account deleted.")
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
