package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/emergency15/internal/client/i18n"
	"github.com/dmitrijs2005/emergency15/internal/client/models"
)

// Report sends the incident location and remembers the lead for Evidence.
func (a *App) Report(ctx context.Context, args []string) error {
	a.say(a.translator.T(i18n.KeyReportLocation))

	latS, err := a.argOrPrompt(args, 0, "Latitude")
	if err != nil {
		return err
	}
	lngS, err := a.argOrPrompt(args, 1, "Longitude")
	if err != nil {
		return err
	}
	lat, err := strconv.ParseFloat(latS, 64)
	if err != nil {
		return fmt.Errorf("latitude %q: %w", latS, err)
	}
	lng, err := strconv.ParseFloat(lngS, 64)
	if err != nil {
		return fmt.Errorf("longitude %q: %w", lngS, err)
	}

	id, err := a.leadService.Report(ctx, lat, lng)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.lastLeadID = id
	a.mu.Unlock()

	a.say("%s %s (#%d)", a.translator.T(i18n.KeyEvidenceThanks), a.translator.T(i18n.KeyEvidenceReport), id)
	a.say(a.translator.T(i18n.KeyEvidenceAttach))
	return nil
}

// Evidence uploads files given as kind=path pairs. The lead defaults to the
// last one reported in this session.
func (a *App) Evidence(ctx context.Context, args []string) error {
	a.mu.Lock()
	ev := models.Evidence{LeadID: a.lastLeadID, Files: map[models.MediaKind]string{}}
	a.mu.Unlock()

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" {
			return fmt.Errorf("expected kind=path, got %q", arg)
		}
		if key == "lead" {
			id, err := parseInt64(value)
			if err != nil {
				return fmt.Errorf("lead %q: %w", value, err)
			}
			ev.LeadID = id
			continue
		}
		kind, err := models.ParseMediaKind(key)
		if err != nil {
			return err
		}
		ev.Files[kind] = value
	}

	if ev.LeadID == 0 {
		return fmt.Errorf("no lead to attach to, run report first or pass lead=<id>")
	}
	if len(ev.Files) == 0 {
		return fmt.Errorf("usage: evidence [lead=<id>] image=<path> video=<path> audio=<path>")
	}

	if err := a.leadService.AttachEvidence(ctx, ev); err != nil {
		return err
	}
	a.say(a.translator.T(i18n.KeyEvidenceAppr))
	a.say(a.translator.T(i18n.KeyEvidenceResp))
	return nil
}

// History lists the reported cases with their translated status.
func (a *App) History(ctx context.Context, _ []string) error {
	cases, err := a.leadService.History(ctx)
	if err != nil {
		return err
	}
	a.say("%s (%d)", a.translator.T(i18n.KeyHistoryCases), len(cases))
	if len(cases) == 0 {
		a.say(a.translator.T(i18n.KeyHistoryNone))
		return nil
	}
	for _, c := range cases {
		when := c.TimeID
		if when == "" {
			when = "-"
		}
		a.say("  #%d  %-12s  %-14s  %s", c.LeadID, c.CaseNumber, a.translator.T(c.CaseStatus.LabelKey()), when)
	}
	return nil
}

// Profile shows the signed-in user.
func (a *App) Profile(_ context.Context, _ []string) error {
	u := a.session.State().User
	if u == nil {
		return fmt.Errorf("not signed in")
	}
	cnic := "-"
	if u.CNIC != nil {
		cnic = *u.CNIC
	}
	a.say(a.translator.T(i18n.KeyProfilePersonal))
	a.say("  Name:    %s", u.DisplayName())
	a.say("  Email:   %s", u.Email)
	a.say("  Contact: %s", u.ContactNumber)
	a.say("  CNIC:    %s", cnic)
	a.say(a.translator.T(i18n.KeyProfileAssured))
	return nil
}

// EditProfile prompts for each field with the current value as default.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	u := a.session.State().User
	if u == nil {
		return fmt.Errorf("not signed in")
	}
	in := models.ProfileInputFrom(*u)

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &in.FirstName},
		{"Last name", &in.LastName},
		{"Email", &in.Email},
		{"CNIC", &in.CNIC},
	}
	for _, f := range fields {
		v, err := GetWithDefault(a.reader, f.prompt, *f.dst, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if err := a.profileService.Update(ctx, in); err != nil {
		return err
	}
	a.say(a.translator.T(i18n.KeyProfileUpdated))
	return nil
}

// DeleteAccount asks for confirmation, deletes the account and signs out.
func (a *App) DeleteAccount(ctx context.Context, _ []string) error {
	a.say(a.translator.T(i18n.KeyProfileDelete))
	a.say(a.translator.T(i18n.KeyProfileSure))
	answer, err := a.prompt(`Type "yes" to delete`)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		return errCancelled
	}
	if err := a.profileService.Delete(ctx); err != nil {
		return err
	}
	a.say(a.translator.T(i18n.KeyProfileDeleted))
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.authService.SignOut(ctx); err != nil {
		return err
	}
	a.say(a.translator.T(i18n.KeySignedOut))
	return nil
}
