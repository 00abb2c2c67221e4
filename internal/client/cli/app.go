package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/emergency15/internal/client/api"
	"github.com/dmitrijs2005/emergency15/internal/client/config"
	"github.com/dmitrijs2005/emergency15/internal/client/i18n"
	"github.com/dmitrijs2005/emergency15/internal/client/locale"
	"github.com/dmitrijs2005/emergency15/internal/client/navigation"
	"github.com/dmitrijs2005/emergency15/internal/client/services"
	"github.com/dmitrijs2005/emergency15/internal/client/session"
	"github.com/dmitrijs2005/emergency15/internal/client/store"
	"github.com/dmitrijs2005/emergency15/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	store      store.Backend
	session    *session.Machine
	locale     *locale.Preference
	translator *i18n.Translator

	authService    services.AuthService
	profileService services.ProfileService
	leadService    services.LeadService

	reader *bufio.Reader
	out    io.Writer

	mu            sync.Mutex
	root          navigation.Root
	pendingUserID int64
	resetContact  string
	lastLeadID    int64

	unsubscribe []func()
}

// Deps are the collaborators of an App. NewApp builds them from config.
type Deps struct {
	Config     *config.Config
	Log        logging.Logger
	Store      store.Backend
	Session    *session.Machine
	Locale     *locale.Preference
	Translator *i18n.Translator
	Auth       services.AuthService
	Profile    services.ProfileService
	Leads      services.LeadService
	In         io.Reader
	Out        io.Writer
}

// NewApp opens the configured store, hydrates the session and the language
// preference and wires the backend services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	backend, err := store.FromConfig(ctx, c)
	if err != nil {
		log.Error(ctx, "error initializing store", "driver", c.StoreDriver, "error", err)
		return nil, err
	}

	sess := session.New(backend, log)
	tr := i18n.New()
	pref := locale.NewPreference(backend, tr, locale.NewTheme(), log)

	apiClient, err := api.New(c.ServerBaseURL, sess, api.Options{
		Timeout:       c.RequestTimeout,
		UploadTimeout: c.UploadTimeout,
		Logger:        log,
	})
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	return newApp(ctx, Deps{
		Config:     c,
		Log:        log,
		Store:      backend,
		Session:    sess,
		Locale:     pref,
		Translator: tr,
		Auth:       services.NewAuthService(apiClient, sess, log),
		Profile:    services.NewProfileService(apiClient, sess, log),
		Leads:      services.NewLeadService(apiClient, sess, log),
		In:         os.Stdin,
		Out:        os.Stdout,
	}), nil
}

func newApp(ctx context.Context, d Deps) *App {
	if d.Log == nil {
		d.Log = logging.NewDiscard()
	}
	a := &App{
		config:         d.Config,
		log:            d.Log,
		store:          d.Store,
		session:        d.Session,
		locale:         d.Locale,
		translator:     d.Translator,
		authService:    d.Auth,
		profileService: d.Profile,
		leadService:    d.Leads,
		reader:         bufio.NewReader(d.In),
		out:            d.Out,
	}

	a.unsubscribe = append(a.unsubscribe,
		a.session.Subscribe(a.onSessionChange),
		a.locale.Subscribe(a.onLanguageChange),
	)

	a.session.Initialize(ctx)
	a.locale.Initialize(ctx)
	return a
}

// Run starts the REPL on the app input and blocks until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.say(a.translator.T(i18n.KeyWelcome))
	if a.destination().Root() == navigation.RootDrawer {
		a.showDrawer()
	}
	a.runREPL(ctx)
}

// Close releases the subscriptions and the store.
func (a *App) Close() error {
	for _, fn := range a.unsubscribe {
		fn()
	}
	a.unsubscribe = nil
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// destination is the navigation gate applied to the current session.
func (a *App) destination() navigation.Destination {
	return navigation.Select(a.session.State())
}

// onSessionChange announces a route change when the gate selects a
// different tree.
func (a *App) onSessionChange(s session.State) {
	dest := navigation.Select(s)

	a.mu.Lock()
	changed := a.root != "" && a.root != dest.Root()
	a.root = dest.Root()
	a.mu.Unlock()

	if !changed {
		return
	}
	a.say("-> " + dest.String())
	switch dest.Root() {
	case navigation.RootWelcome:
		a.showWelcome()
	case navigation.RootDrawer:
		a.showDrawer()
	}
}

func (a *App) onLanguageChange(l locale.Language) {
	a.say(a.translator.T(i18n.KeyLanguageSet, string(l)))
}

// say writes one line. Right-to-left languages get a leading RLM mark so
// bidi-aware terminals align the line to the right.
func (a *App) say(format string, args ...any) {
	line := format
	if len(args) > 0 {
		line = fmt.Sprintf(format, args...)
	}
	if a.locale != nil && a.locale.Direction() == locale.RTL {
		line = "\u200f" + line
	}
	fmt.Fprintln(a.out, line)
}

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

func (a *App) promptPassword(text string) (string, error) {
	return getPassword(a.reader, text, a.out)
}

// errCancelled aborts an interactive flow without reporting an error.
var errCancelled = errors.New("cancelled")
