package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/emergency15/internal/client/api"
	"github.com/dmitrijs2005/emergency15/internal/client/models"
	"github.com/dmitrijs2005/emergency15/internal/logging"
)

// Session is the part of the session state machine the services drive.
type Session interface {
	Login(ctx context.Context, user models.User) error
	SignOut(ctx context.Context) error
	Update(ctx context.Context, patch models.ProfilePatch) error
}

// expireOnUnauthorized signs the session out when the backend rejected the
// bearer token, so the navigation gate falls back to the auth screens.
func expireOnUnauthorized(ctx context.Context, s Session, log logging.Logger, err error) error {
	if !errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	log.Warn(ctx, "backend rejected the session token, signing out")
	if serr := s.SignOut(ctx); serr != nil {
		return errors.Join(err, serr)
	}
	return err
}
