package services

import (
	"context"

	"github.com/dmitrijs2005/emergency15/internal/client/api"
	"github.com/dmitrijs2005/emergency15/internal/client/models"
	"github.com/dmitrijs2005/emergency15/internal/logging"
)

// LeadService reports incidents, attaches evidence and lists past cases.
type LeadService interface {
	Report(ctx context.Context, lat, lng float64) (int64, error)
	AttachEvidence(ctx context.Context, ev models.Evidence) error
	History(ctx context.Context) ([]models.Case, error)
}

type leadService struct {
	client  api.Client
	session Session
	log     logging.Logger
}

func NewLeadService(c api.Client, s Session, log logging.Logger) LeadService {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &leadService{client: c, session: s, log: log.With("service", "lead")}
}

func (l *leadService) Report(ctx context.Context, lat, lng float64) (int64, error) {
	in := models.NewLeadInput(lat, lng)
	if err := models.Check(in); err != nil {
		return 0, err
	}
	id, err := l.client.SaveLead(ctx, in)
	if err != nil {
		return 0, expireOnUnauthorized(ctx, l.session, l.log, err)
	}
	l.log.Info(ctx, "incident reported", "lead_id", id)
	return id, nil
}

func (l *leadService) AttachEvidence(ctx context.Context, ev models.Evidence) error {
	if err := models.Check(ev); err != nil {
		return err
	}
	if err := l.client.SaveLeadMedia(ctx, ev); err != nil {
		return expireOnUnauthorized(ctx, l.session, l.log, err)
	}
	l.log.Info(ctx, "evidence uploaded", "lead_id", ev.LeadID, "files", len(ev.Files))
	return nil
}

// History returns the user's cases with statuses normalized.
func (l *leadService) History(ctx context.Context) ([]models.Case, error) {
	cases, err := l.client.UserSOS(ctx)
	if err != nil {
		return nil, expireOnUnauthorized(ctx, l.session, l.log, err)
	}
	for i := range cases {
		cases[i].CaseStatus = cases[i].CaseStatus.Normalize()
	}
	return cases, nil
}
