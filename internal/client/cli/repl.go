package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/emergency15/internal/client/api"
	"github.com/dmitrijs2005/emergency15/internal/client/i18n"
	"github.com/dmitrijs2005/emergency15/internal/client/models"
	"github.com/dmitrijs2005/emergency15/internal/client/navigation"
)

// command is one REPL command. screen is the screen it belongs to; an empty
// screen means the command is available under every tree.
type command struct {
	name    string
	aliases []string
	usage   string
	screen  navigation.Screen
	run     func(a *App, ctx context.Context, args []string) error
}

// commands is filled in init: handlers such as Help read it back.
var commands []command

func init() {
	commands = []command{
		{name: "help", usage: "help", run: (*App).Help},
		{name: "status", usage: "status", run: (*App).Status},
		{name: "lang", usage: "lang [en|ur]", run: (*App).Lang},

		{name: "login", usage: "login", screen: navigation.ScreenLogin, run: (*App).Login},
		{name: "register", usage: "register", screen: navigation.ScreenRegister, run: (*App).Register},
		{name: "verify", usage: "verify [otp]", screen: navigation.ScreenVerification, run: (*App).Verify},
		{name: "forgot", usage: "forgot", screen: navigation.ScreenForgetPassword, run: (*App).Forgot},
		{name: "reset-password", usage: "reset-password", screen: navigation.ScreenResetPassword, run: (*App).ResetPassword},

		{name: "welcome", usage: "welcome", screen: navigation.ScreenWelcome, run: (*App).Welcome},
		{name: "onboard", aliases: []string{"skip"}, usage: "onboard", screen: navigation.ScreenWelcome, run: (*App).OnBoard},

		{name: "report", usage: "report <lat> <lng>", screen: navigation.ScreenReport, run: (*App).Report},
		{name: "evidence", usage: "evidence [lead=<id>] image=<path> video=<path> audio=<path>", screen: navigation.ScreenEvidence, run: (*App).Evidence},
		{name: "history", usage: "history", screen: navigation.ScreenHistory, run: (*App).History},
		{name: "profile", usage: "profile", screen: navigation.ScreenProfile, run: (*App).Profile},
		{name: "edit", usage: "edit", screen: navigation.ScreenProfile, run: (*App).EditProfile},
		{name: "delete-account", usage: "delete-account", screen: navigation.ScreenProfile, run: (*App).DeleteAccount},
		{name: "logout", usage: "logout", screen: navigation.ScreenProfile, run: (*App).Logout},

		{name: "storage", usage: "storage", run: (*App).Storage},
		{name: "reset", usage: "reset", run: (*App).Reset},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
		for _, alias := range c.aliases {
			if alias == name {
				return c, true
			}
		}
	}
	return command{}, false
}

// available lists the commands the gate allows right now.
func (a *App) available() []command {
	dest := a.destination()
	var out []command
	for _, c := range commands {
		if c.screen == "" || dest.Allows(c.screen) {
			out = append(out, c)
		}
	}
	return out
}

// runREPL reads commands line by line until EOF, "exit" or "quit".
//
// Commands whose screen is not mounted by the navigation gate are refused.
// Handler errors are reported to the user and the loop continues.
// Lines and prompts share a.reader.
func (a *App) runREPL(ctx context.Context) {
	for {
		fmt.Fprintf(a.out, "e15 %s> ", a.statusLine())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		if name == "exit" || name == "quit" {
			a.say(a.translator.T(i18n.KeyBye))
			return
		}
		a.exec(ctx, name, args)

		if ctx.Err() != nil {
			return
		}
	}
}

// exec runs one command through the gate.
func (a *App) exec(ctx context.Context, name string, args []string) {
	cmd, ok := lookup(name)
	if !ok {
		a.say(a.translator.T(i18n.KeyUnknownCommand, name))
		return
	}
	if cmd.screen != "" && !a.destination().Allows(cmd.screen) {
		a.say(a.translator.T(i18n.KeyNotAvailable, name))
		return
	}
	if err := cmd.run(a, ctx, args); err != nil {
		a.report(ctx, err)
	}
}

// report prints err in user terms and logs it.
func (a *App) report(ctx context.Context, err error) {
	var (
		verr   *models.ValidationError
		apiErr *api.Error
	)
	switch {
	case errors.Is(err, errCancelled):
		a.say(a.translator.T(i18n.KeyCancelled))
		return
	case errors.As(err, &verr):
		a.say(verr.Error())
	case errors.As(err, &apiErr):
		a.say(apiErr.Message)
	case errors.Is(err, api.ErrUnauthorized):
		a.say("Your session has expired. Please login again.")
	case errors.Is(err, api.ErrUnavailable):
		a.say("Server unavailable. Please try again!")
	default:
		a.say("Error: %v", err)
	}
	a.log.Debug(ctx, "command failed", "error", err)
}
