package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/emergency15/internal/client/i18n"
	"github.com/dmitrijs2005/emergency15/internal/client/locale"
	"github.com/dmitrijs2005/emergency15/internal/client/navigation"
	"github.com/dmitrijs2005/emergency15/internal/client/session"
	"github.com/dmitrijs2005/emergency15/internal/client/store"
	"github.com/dmitrijs2005/emergency15/internal/common"
)

// Help lists the commands available under the mounted tree.
func (a *App) Help(_ context.Context, _ []string) error {
	var names []string
	for _, c := range a.available() {
		names = append(names, c.usage)
	}
	names = append(names, "exit")
	a.say(a.translator.T(i18n.KeyCommands, strings.Join(names, ", ")))

	if a.destination().Root() == navigation.RootDrawer {
		for _, item := range drawerMenu {
			a.say("  %-8s %s", item.command, a.translator.T(item.label))
		}
	}
	return nil
}

// drawerMenu labels the drawer entries in the active language.
var drawerMenu = []struct {
	command string
	label   string
}{
	{"report", i18n.KeyNavReport},
	{"history", i18n.KeyNavHistory},
	{"profile", i18n.KeyNavProfile},
	{"edit", i18n.KeyNavEdit},
	{"logout", i18n.KeyNavSignOut},
}

// showDrawer is printed when the drawer tree is mounted.
func (a *App) showDrawer() {
	a.say(a.translator.T(i18n.KeyReportAssist))
	a.say(a.translator.T(i18n.KeyReportPress))
}

// Status prints route, language and session details.
func (a *App) Status(_ context.Context, _ []string) error {
	s := a.session.State()
	a.say("route:     %s", a.destination())
	a.say("language:  %s (%s)", a.locale.Language(), a.locale.Direction())
	a.say("session:   %s", s.Status)
	a.say("onboarded: %t", s.OnBoarded)
	if s.User != nil {
		a.say("user:      %s (id %d)", s.User.DisplayName(), s.User.ID)
		if exp, ok := session.TokenExpiry(s.User.Token); ok {
			state := "valid"
			if session.TokenExpired(s.User.Token) {
				state = "expired"
			}
			a.say("token:     %s until %s", state, exp.Local().Format(time.RFC1123))
		}
	}
	return nil
}

// Lang shows or switches the language.
func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		codes := make([]string, 0, len(locale.Supported))
		for _, l := range locale.Supported {
			codes = append(codes, string(l))
		}
		a.say("%s [%s]", a.locale.Language(), strings.Join(codes, "|"))
		return nil
	}
	return a.locale.ChangeLanguage(ctx, locale.Language(strings.ToLower(args[0])))
}

// Welcome prints the onboarding slides.
func (a *App) Welcome(_ context.Context, _ []string) error {
	a.showWelcome()
	return nil
}

func (a *App) showWelcome() {
	for _, k := range []string{
		i18n.KeyWelcome, i18n.KeyWelcomeHelp, i18n.KeyWelcomeEasy,
		i18n.KeyWelcomeReport, i18n.KeyWelcomeChoose,
	} {
		a.say(a.translator.T(k))
	}
	a.say(`(lang en|ur, then "onboard" or "%s")`, a.translator.T(i18n.KeyWelcomeSkip))
}

// OnBoard completes onboarding.
func (a *App) OnBoard(ctx context.Context, _ []string) error {
	return a.session.OnBoard(ctx)
}

// Storage dumps the persisted keys. The auth record is redacted.
func (a *App) Storage(ctx context.Context, _ []string) error {
	l, ok := a.store.(store.Lister)
	if !ok {
		return fmt.Errorf("store does not support listing")
	}
	kv, err := l.List(ctx)
	if err != nil {
		return err
	}
	for _, k := range slices.Sorted(maps.Keys(kv)) {
		v := kv[k]
		if k == common.AuthKey {
			v = fmt.Sprintf("<%d bytes>", len(v))
		}
		a.say("%-12s %s", k, v)
	}
	return nil
}

// Reset wipes the store and re-hydrates, like a fresh install.
func (a *App) Reset(ctx context.Context, _ []string) error {
	answer, err := a.prompt(`This removes the session, onboarding and language. Type "yes" to continue`)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		return errCancelled
	}
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.session.Initialize(ctx)
	a.locale.Initialize(ctx)
	return nil
}

// statusLine is shown in the prompt: mounted root, direction and user.
func (a *App) statusLine() string {
	s := a.session.State()
	parts := []string{string(a.destination().Root()), string(a.locale.Direction())}
	if s.User != nil {
		parts = append(parts, s.User.DisplayName())
	}
	return "(" + strings.Join(parts, " ") + ")"
}
