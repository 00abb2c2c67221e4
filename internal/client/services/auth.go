package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/emergency15/internal/client/api"
	"github.com/dmitrijs2005/emergency15/internal/client/models"
	"github.com/dmitrijs2005/emergency15/internal/logging"
)

// AuthService covers the unauthenticated flows: login, registration with
// OTP verification and password recovery.
type AuthService interface {
	Login(ctx context.Context, in models.LoginInput) (models.User, error)
	Register(ctx context.Context, in models.RegisterInput) (int64, error)
	Verify(ctx context.Context, in models.VerificationInput) error
	ForgetPassword(ctx context.Context, in models.ForgetPasswordInput) (string, error)
	ResetPassword(ctx context.Context, in models.ResetPasswordInput) error
	SignOut(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session Session
	log     logging.Logger
}

func NewAuthService(c api.Client, s Session, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &authService{client: c, session: s, log: log.With("service", "auth")}
}

// Login authenticates against the backend and starts the session with the
// returned user.
func (a *authService) Login(ctx context.Context, in models.LoginInput) (models.User, error) {
	if err := models.Check(in); err != nil {
		return models.User{}, err
	}

	data, err := a.client.Login(ctx, in)
	if err != nil {
		return models.User{}, err
	}

	user := data.User()
	if err := a.session.Login(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("start session: %w", err)
	}
	return user, nil
}

// Register creates the account and returns the user id the OTP must be
// verified against.
func (a *authService) Register(ctx context.Context, in models.RegisterInput) (int64, error) {
	if err := models.Check(in); err != nil {
		return 0, err
	}
	out, err := a.client.Register(ctx, in)
	if err != nil {
		return 0, err
	}
	a.log.Info(ctx, "registered", "user_id", out.UserID)
	return out.UserID, nil
}

func (a *authService) Verify(ctx context.Context, in models.VerificationInput) error {
	if err := models.Check(in); err != nil {
		return err
	}
	return a.client.VerifyRegistration(ctx, in)
}

// ForgetPassword requests a reset OTP and returns the contact number the
// backend sent it to.
func (a *authService) ForgetPassword(ctx context.Context, in models.ForgetPasswordInput) (string, error) {
	if err := models.Check(in); err != nil {
		return "", err
	}
	out, err := a.client.ForgetPassword(ctx, in)
	if err != nil {
		return "", err
	}
	if out.ContactNumber == "" {
		return in.ContactNumber, nil
	}
	return out.ContactNumber, nil
}

func (a *authService) ResetPassword(ctx context.Context, in models.ResetPasswordInput) error {
	if err := models.Check(in); err != nil {
		return err
	}
	return a.client.ResetPassword(ctx, in)
}

// SignOut ends the local session. The backend has no logout endpoint.
func (a *authService) SignOut(ctx context.Context) error {
	return a.session.SignOut(ctx)
}
