package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/emergency15/internal/client/api"
	"github.com/dmitrijs2005/emergency15/internal/client/models"
	"github.com/dmitrijs2005/emergency15/internal/logging"
)

type ProfileService interface {
	Update(ctx context.Context, in models.ProfileInput) error
	Delete(ctx context.Context) error
}

type profileService struct {
	client  api.Client
	session Session
	log     logging.Logger
}

func NewProfileService(c api.Client, s Session, log logging.Logger) ProfileService {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &profileService{client: c, session: s, log: log.With("service", "profile")}
}

// Update saves the profile on the backend, then merges it into the session.
func (p *profileService) Update(ctx context.Context, in models.ProfileInput) error {
	if err := models.Check(in); err != nil {
		return err
	}
	if err := p.client.UpdateUser(ctx, in); err != nil {
		return expireOnUnauthorized(ctx, p.session, p.log, err)
	}
	if err := p.session.Update(ctx, in.Patch()); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// Delete removes the account on the backend and signs out.
func (p *profileService) Delete(ctx context.Context) error {
	if err := p.client.DeleteUser(ctx); err != nil {
		return expireOnUnauthorized(ctx, p.session, p.log, err)
	}
	p.log.Info(ctx, "account deleted")
	return p.session.SignOut(ctx)
}
