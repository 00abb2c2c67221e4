// Package navigation selects which screen tree the CLI mounts from the
// session flags. Every command is gated through Select, so nothing reaches
// the main tree unless the session is authenticated.
package navigation

import "slices"

type Root string

const (
	RootAuth    Root = "auth"
	RootWelcome Root = "welcome"
	RootDrawer  Root = "drawer"
)

type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenRegister       Screen = "register"
	ScreenVerification   Screen = "verification"
	ScreenForgetPassword Screen = "forget-password"
	ScreenResetPassword  Screen = "reset-password"
	ScreenWelcome        Screen = "welcome"
	ScreenReport         Screen = "report"
	ScreenEvidence       Screen = "evidence"
	ScreenHistory        Screen = "history"
	ScreenProfile        Screen = "profile"
)

var screens = map[Root][]Screen{
	RootAuth:    {ScreenLogin, ScreenRegister, ScreenVerification, ScreenForgetPassword, ScreenResetPassword},
	RootWelcome: {ScreenWelcome},
	RootDrawer:  {ScreenReport, ScreenEvidence, ScreenHistory, ScreenProfile},
}

// Screens lists the screens mounted under root.
func Screens(root Root) []Screen {
	return slices.Clone(screens[root])
}

// Destination is an ordered stack of roots. The first element is shown
// first; later ones follow once it is dismissed.
type Destination []Root

var (
	Auth              = Destination{RootAuth}
	WelcomeThenDrawer = Destination{RootWelcome, RootDrawer}
	Drawer            = Destination{RootDrawer}
)

// Root is the tree currently mounted.
func (d Destination) Root() Root {
	if len(d) == 0 {
		return RootAuth
	}
	return d[0]
}

// Allows reports whether screen is reachable under the mounted root.
func (d Destination) Allows(screen Screen) bool {
	return slices.Contains(screens[d.Root()], screen)
}

func (d Destination) String() string {
	s := ""
	for i, r := range d {
		if i > 0 {
			s += " -> "
		}
		s += string(r)
	}
	return s
}

// Session is the part of the session state the gate depends on.
type Session interface {
	IsAuthenticated() bool
	IsOnBoarded() bool
}

// Select is the navigation gate. It depends on nothing but the two flags.
func Select(s Session) Destination {
	switch {
	case !s.IsAuthenticated():
		return Auth
	case !s.IsOnBoarded():
		return WelcomeThenDrawer
	default:
		return Drawer
	}
}
