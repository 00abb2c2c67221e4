package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/emergency15/internal/client/config"
	"github.com/dmitrijs2005/emergency15/internal/client/i18n"
	"github.com/dmitrijs2005/emergency15/internal/client/locale"
	"github.com/dmitrijs2005/emergency15/internal/client/models"
	"github.com/dmitrijs2005/emergency15/internal/client/session"
	"github.com/dmitrijs2005/emergency15/internal/client/store"
	"github.com/dmitrijs2005/emergency15/internal/logging"
)

type fakeAuth struct {
	sess *session.Machine

	user     models.User
	loginErr error
	loginIn  models.LoginInput

	registerID  int64
	registerErr error
	verifyIn    models.VerificationInput
	verifyErr   error

	forgotTo string
	resetIn  models.ResetPasswordInput

	signOuts int
}

func (f *fakeAuth) Login(ctx context.Context, in models.LoginInput) (models.User, error) {
	f.loginIn = in
	if err := models.Check(in); err != nil {
		return models.User{}, err
	}
	if f.loginErr != nil {
		return models.User{}, f.loginErr
	}
	if err := f.sess.Login(ctx, f.user); err != nil {
		return models.User{}, err
	}
	return f.user, nil
}

func (f *fakeAuth) Register(_ context.Context, in models.RegisterInput) (int64, error) {
	if err := models.Check(in); err != nil {
		return 0, err
	}
	return f.registerID, f.registerErr
}

func (f *fakeAuth) Verify(_ context.Context, in models.VerificationInput) error {
	f.verifyIn = in
	return f.verifyErr
}

func (f *fakeAuth) ForgetPassword(_ context.Context, in models.ForgetPasswordInput) (string, error) {
	return f.forgotTo, nil
}

func (f *fakeAuth) ResetPassword(_ context.Context, in models.ResetPasswordInput) error {
	f.resetIn = in
	return models.Check(in)
}

func (f *fakeAuth) SignOut(ctx context.Context) error {
	f.signOuts++
	return f.sess.SignOut(ctx)
}

type fakeProfile struct {
	sess *session.Machine

	updated  *models.ProfileInput
	deletes  int
	failWith error
}

func (f *fakeProfile) Update(ctx context.Context, in models.ProfileInput) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.updated = &in
	return f.sess.Update(ctx, in.Patch())
}

func (f *fakeProfile) Delete(ctx context.Context) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deletes++
	return f.sess.SignOut(ctx)
}

type fakeLeads struct {
	leadID   int64
	reported [][2]float64
	evidence []models.Evidence
	cases    []models.Case
	failWith error
}

func (f *fakeLeads) Report(_ context.Context, lat, lng float64) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	f.reported = append(f.reported, [2]float64{lat, lng})
	return f.leadID, nil
}

func (f *fakeLeads) AttachEvidence(_ context.Context, ev models.Evidence) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.evidence = append(f.evidence, ev)
	return nil
}

func (f *fakeLeads) History(_ context.Context) ([]models.Case, error) {
	return f.cases, f.failWith
}

type testApp struct {
	*App
	out     *bytes.Buffer
	store   *store.MemoryStore
	auth    *fakeAuth
	profile *fakeProfile
	leads   *fakeLeads
}

func sampleUser() models.User {
	cnic := "6110112345671"
	return models.User{
		Token:         "tok-1",
		ID:            7,
		FirstName:     "Ayesha",
		LastName:      "Khan",
		CNIC:          &cnic,
		Email:         "ayesha@example.com",
		ContactNumber: "03001234567",
	}
}

// newTestApp wires an App over a memory store. in is the whole user input,
// commands and prompt answers alike. Password prompts read lines.
func newTestApp(t *testing.T, in string, seed map[string]string) *testApp {
	t.Helper()

	origTTY := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTTY })

	ctx := context.Background()
	ms := store.NewMemoryStore()
	for k, v := range seed {
		if err := ms.Set(ctx, k, v); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()

	log := logging.NewDiscard()
	sess := session.New(ms, log)
	tr := i18n.New()
	pref := locale.NewPreference(ms, tr, locale.NewTheme(), log)

	ta := &testApp{
		out:     &bytes.Buffer{},
		store:   ms,
		auth:    &fakeAuth{sess: sess, user: sampleUser(), registerID: 91},
		profile: &fakeProfile{sess: sess},
		leads:   &fakeLeads{leadID: 42},
	}
	ta.App = newApp(ctx, Deps{
		Config:     cfg,
		Log:        log,
		Store:      ms,
		Session:    sess,
		Locale:     pref,
		Translator: tr,
		Auth:       ta.auth,
		Profile:    ta.profile,
		Leads:      ta.leads,
		In:         strings.NewReader(in),
		Out:        ta.out,
	})
	t.Cleanup(func() { _ = ta.App.Close() })
	return ta
}

func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}
