package cli

import (
	"context"

	"github.com/dayadevraha/devraha/internal/client/forms"
)

func (a *App) verifyEmail(ctx context.Context, args []string) error {
	kind, rest := kindArg(args)

	token := ""
	if len(rest) > 0 {
		token = rest[0]
	} else {
		var err error
		if token, err = a.ask("Paste the verification token"); err != nil {
			return err
		}
	}

	verified, err := a.store.For(kind).VerifyEmail(ctx, token)
	if err != nil {
		return err
	}
	if verified {
		a.println("Email verified. Thank you!")
	} else {
		a.println("The email is still not verified.")
	}
	return nil
}

// emailFor uses the signed-in subject's email or asks for one.
func (a *App) emailFor(kindArgs []string) (string, error) {
	kind, _ := kindArg(kindArgs)
	email := ""
	if s := a.store.Snapshot().Session(kind).Subject; s != nil {
		email = s.Email
	} else {
		var err error
		if email, err = a.ask("Enter email"); err != nil {
			return "", err
		}
	}
	if err := forms.Validate(forms.Email{Email: email}); err != nil {
		return "", err
	}
	return email, nil
}

func (a *App) resend(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)
	email, err := a.emailFor(args)
	if err != nil {
		return err
	}
	msg, err := a.store.For(kind).ResendVerification(ctx, email)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) forgot(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)
	email, err := a.ask("Enter the account email")
	if err != nil {
		return err
	}
	if err := forms.Validate(forms.Email{Email: email}); err != nil {
		return err
	}
	msg, err := a.store.For(kind).ForgotPassword(ctx, email)
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}

func (a *App) reset(ctx context.Context, args []string) error {
	kind, _ := kindArg(args)

	var f forms.ResetPassword
	var err error
	if f.Token, err = a.ask("Paste the reset token"); err != nil {
		return err
	}
	if f.NewPassword, err = a.askSecret("New password"); err != nil {
		return err
	}
	if f.ConfirmPassword, err = a.askSecret("Confirm new password"); err != nil {
		return err
	}
	if err := forms.Validate(f); err != nil {
		return err
	}

	msg, err := a.store.For(kind).ResetPassword(ctx, f.Request())
	if err != nil {
		return err
	}
	a.println(msg)
	return nil
}
