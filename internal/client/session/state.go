package session

import "github.com/dmitrijs2005/emergency15/internal/client/models"

// Status is the authentication state of the session.
type Status int

const (
	// StatusUnknown is the state before Initialize has run.
	StatusUnknown Status = iota
	StatusAnonymous
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the session. User is nil unless
// Status is StatusAuthenticated.
type State struct {
	Status    Status
	User      *models.User
	OnBoarded bool
}

func (s State) IsAuthenticated() bool { return s.Status == StatusAuthenticated }

func (s State) IsOnBoarded() bool { return s.OnBoarded }

func (s State) clone() State {
	if s.User != nil {
		u := s.User.Clone()
		s.User = &u
	}
	return s
}
