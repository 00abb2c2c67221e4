// Package session implements the client's authentication state machine.
//
// A Machine owns the in-memory session (who is logged in, whether the
// onboarding screens were seen) and writes every transition through to a
// store.Store, so the next process start restores the same state via
// Initialize.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/emergency15/internal/client/models"
	"github.com/dmitrijs2005/emergency15/internal/client/store"
	"github.com/dmitrijs2005/emergency15/internal/common"
	"github.com/dmitrijs2005/emergency15/internal/logging"
)

// ErrInvalidUser is returned by Login when required identity fields are missing.
var ErrInvalidUser = errors.New("invalid user")

// Machine is safe for concurrent use. Transitions are serialized and
// observers run after the transition is committed, outside the state lock.
type Machine struct {
	mu    sync.Mutex
	store store.Store
	log   logging.Logger
	state State
	seq   uint64

	// deliverMu orders observer calls; delivered is the last seq passed on.
	deliverMu sync.Mutex
	delivered uint64

	obsMu     sync.Mutex
	observers map[int]func(State)
	nextObs   int
}

func New(s store.Store, log logging.Logger) *Machine {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &Machine{
		store:     s,
		log:       log.With("component", "session"),
		observers: make(map[int]func(State)),
	}
}

// State returns a snapshot of the current session.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

func (m *Machine) IsAuthenticated() bool { return m.State().IsAuthenticated() }

func (m *Machine) IsOnBoarded() bool { return m.State().IsOnBoarded() }

// Subscribe registers fn to be called with the new state after every
// transition. The returned func removes the subscription.
//
// Observers see snapshots in commit order. A snapshot overtaken by a newer
// one before delivery is dropped. fn runs under the delivery lock and must
// not start a transition itself.
func (m *Machine) Subscribe(fn func(State)) func() {
	m.obsMu.Lock()
	defer m.obsMu.Unlock()

	id := m.nextObs
	m.nextObs++
	m.observers[id] = fn

	return func() {
		m.obsMu.Lock()
		defer m.obsMu.Unlock()
		delete(m.observers, id)
	}
}

// commit stamps the current state with the next sequence number. Callers
// hold m.mu.
func (m *Machine) commit() (uint64, State) {
	m.seq++
	return m.seq, m.state.clone()
}

func (m *Machine) notify(seq uint64, s State) {
	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()
	if seq <= m.delivered {
		return
	}
	m.delivered = seq

	m.obsMu.Lock()
	fns := make([]func(State), 0, len(m.observers))
	for _, fn := range m.observers {
		fns = append(fns, fn)
	}
	m.obsMu.Unlock()

	for _, fn := range fns {
		fn(s.clone())
	}
}

// Initialize hydrates the session from the store. It never fails: read or
// decode errors are logged and the session degrades to anonymous and not
// onboarded. Calling it again re-reads the store and overwrites memory.
func (m *Machine) Initialize(ctx context.Context) {
	m.mu.Lock()
	next := State{
		Status:    StatusAnonymous,
		OnBoarded: m.readOnBoarded(ctx),
	}
	if u := m.readUser(ctx); u != nil {
		next.Status = StatusAuthenticated
		next.User = u
	}
	m.state = next
	seq, snapshot := m.commit()
	m.mu.Unlock()

	m.log.Debug(ctx, "session initialized",
		"status", snapshot.Status.String(), "onboarded", snapshot.OnBoarded)
	m.notify(seq, snapshot)
}

func (m *Machine) readUser(ctx context.Context) *models.User {
	raw, ok, err := m.store.GetString(ctx, common.AuthKey)
	if err != nil {
		m.log.Error(ctx, "failed to read persisted user", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		m.log.Error(ctx, "failed to decode persisted user", "error", err)
		return nil
	}
	if err := models.Check(u); err != nil {
		m.log.Warn(ctx, "persisted user is incomplete, ignoring", "error", err)
		return nil
	}

	if exp, ok := TokenExpiry(u.Token); ok && exp.Before(now()) {
		m.log.Warn(ctx, "restored session token has expired", "user_id", u.ID, "expired_at", exp)
	}
	return &u
}

func (m *Machine) readOnBoarded(ctx context.Context) bool {
	v, ok, err := m.store.GetString(ctx, common.OnBoardedKey)
	if err != nil {
		m.log.Error(ctx, "failed to read onboarding flag", "error", err)
		return false
	}
	return ok && v != ""
}

// Login persists user and transitions to authenticated. The user must carry
// a token, a positive id and a contact number.
func (m *Machine) Login(ctx context.Context, user models.User) error {
	if err := models.Check(user); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	m.mu.Lock()
	if err := m.store.Set(ctx, common.AuthKey, string(b)); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("persist user: %w", err)
	}
	stored := user.Clone()
	m.state.Status = StatusAuthenticated
	m.state.User = &stored
	seq, snapshot := m.commit()
	m.mu.Unlock()

	m.log.Info(ctx, "logged in", "user_id", user.ID)
	m.notify(seq, snapshot)
	return nil
}

// SignOut removes the persisted user. The onboarding flag is kept.
func (m *Machine) SignOut(ctx context.Context) error {
	m.mu.Lock()
	if err := m.store.Delete(ctx, common.AuthKey); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("delete user: %w", err)
	}
	m.state.Status = StatusAnonymous
	m.state.User = nil
	seq, snapshot := m.commit()
	m.mu.Unlock()

	m.log.Info(ctx, "signed out")
	m.notify(seq, snapshot)
	return nil
}

// OnBoard marks onboarding complete. It is a no-op when already onboarded.
func (m *Machine) OnBoard(ctx context.Context) error {
	m.mu.Lock()
	if m.state.OnBoarded {
		m.mu.Unlock()
		return nil
	}
	if err := m.store.Set(ctx, common.OnBoardedKey, common.OnBoardedSentinel); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("persist onboarding flag: %w", err)
	}
	m.state.OnBoarded = true
	seq, snapshot := m.commit()
	m.mu.Unlock()

	m.notify(seq, snapshot)
	return nil
}

// Update merges patch into the persisted user and rewrites it.
//
// It must only be called while authenticated: a missing persisted user
// panics.
func (m *Machine) Update(ctx context.Context, patch models.ProfilePatch) error {
	m.mu.Lock()
	raw, ok, err := m.store.GetString(ctx, common.AuthKey)
	if err != nil {
		m.mu.Unlock()
		return fmt.Errorf("read user: %w", err)
	}
	if !ok {
		m.mu.Unlock()
		panic("session: Update called without a persisted user")
	}

	var current models.User
	if err := json.Unmarshal([]byte(raw), &current); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("decode user: %w", err)
	}

	merged := patch.Apply(current).Clone()
	b, err := json.Marshal(merged)
	if err != nil {
		m.mu.Unlock()
		return fmt.Errorf("encode user: %w", err)
	}
	if err := m.store.Set(ctx, common.AuthKey, string(b)); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("persist user: %w", err)
	}
	m.state.Status = StatusAuthenticated
	m.state.User = &merged
	seq, snapshot := m.commit()
	m.mu.Unlock()

	m.notify(seq, snapshot)
	return nil
}

// Token returns the bearer token of the persisted user, or "" when there
// is none. It reads the store rather than memory so requests always carry
// what is on disk.
func (m *Machine) Token(ctx context.Context) (string, error) {
	raw, ok, err := m.store.GetString(ctx, common.AuthKey)
	if err != nil {
		return "", fmt.Errorf("read user: %w", err)
	}
	if !ok {
		return "", nil
	}

	var u struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return "", fmt.Errorf("decode user: %w", err)
	}
	return u.Token, nil
}
