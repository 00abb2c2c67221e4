package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/emergency15/internal/client/i18n"
	"github.com/dmitrijs2005/emergency15/internal/client/models"
)

// Login prompts for contact number and password and starts a session.
// The navigation gate moves to the welcome or drawer tree on success.
func (a *App) Login(ctx context.Context, _ []string) error {
	contact, err := a.prompt("Contact number")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, models.LoginInput{ContactNumber: contact, Password: password})
	if err != nil {
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			a.say(a.translator.T(i18n.KeyLoginFailed))
		}
		return err
	}

	a.say(a.translator.T(i18n.KeyLoginSuccess))
	a.say(a.translator.T(i18n.KeyNavGreet, user.DisplayName()))
	return nil
}

// Register collects the registration form. On success the returned user id
// is kept for the verify command.
func (a *App) Register(ctx context.Context, _ []string) error {
	var in models.RegisterInput
	fields := []struct {
		prompt string
		dst    *string
		secret bool
	}{
		{"First name", &in.FirstName, false},
		{"Last name", &in.LastName, false},
		{"Email", &in.Email, false},
		{"Contact number", &in.ContactNumber, false},
		{"CNIC", &in.CNIC, false},
		{"Password", &in.Password, true},
		{"Confirm password", &in.PasswordConfirmation, true},
	}
	for _, f := range fields {
		var (
			v   string
			err error
		)
		if f.secret {
			v, err = a.promptPassword(f.prompt)
		} else {
			v, err = a.prompt(f.prompt)
		}
		if err != nil {
			return err
		}
		*f.dst = v
	}

	userID, err := a.authService.Register(ctx, in)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.pendingUserID = userID
	a.mu.Unlock()

	a.say(a.translator.T(i18n.KeyRegistered, in.ContactNumber))
	return nil
}

// Verify confirms the last registration with the OTP given as argument or
// prompted for.
func (a *App) Verify(ctx context.Context, args []string) error {
	a.mu.Lock()
	userID := a.pendingUserID
	a.mu.Unlock()
	if userID == 0 {
		return errors.New("nothing to verify, register first")
	}

	otp, err := a.argOrPrompt(args, 0, "OTP")
	if err != nil {
		return err
	}
	if err := a.authService.Verify(ctx, models.VerificationInput{Token: otp, UserID: userID}); err != nil {
		return err
	}

	a.mu.Lock()
	a.pendingUserID = 0
	a.mu.Unlock()

	a.say(a.translator.T(i18n.KeyVerified))
	return nil
}

// Forgot requests a password reset OTP.
func (a *App) Forgot(ctx context.Context, _ []string) error {
	contact, err := a.prompt("Contact number")
	if err != nil {
		return err
	}
	sentTo, err := a.authService.ForgetPassword(ctx, models.ForgetPasswordInput{ContactNumber: contact})
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.resetContact = contact
	a.mu.Unlock()

	a.say(a.translator.T(i18n.KeyOTPSent, sentTo))
	return nil
}

// ResetPassword sets a new password with the OTP from Forgot.
func (a *App) ResetPassword(ctx context.Context, _ []string) error {
	a.mu.Lock()
	contact := a.resetContact
	a.mu.Unlock()

	otp, err := a.prompt("OTP")
	if err != nil {
		return err
	}
	contact, err = GetWithDefault(a.reader, "Contact number", contact, a.out)
	if err != nil {
		return err
	}
	password, err := a.promptPassword("New password")
	if err != nil {
		return err
	}
	confirm, err := a.promptPassword("Confirm new password")
	if err != nil {
		return err
	}

	err = a.authService.ResetPassword(ctx, models.ResetPasswordInput{
		Token:                otp,
		ContactNumber:        contact,
		Password:             password,
		PasswordConfirmation: confirm,
	})
	if err != nil {
		return err
	}
	a.say(a.translator.T(i18n.KeyPasswordReset))
	return nil
}

func (a *App) argOrPrompt(args []string, i int, prompt string) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	return a.prompt(prompt)
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
