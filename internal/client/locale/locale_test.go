package locale

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/emergency15/internal/client/store"
	"github.com/dmitrijs2005/emergency15/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeTranslator struct {
	mu      sync.Mutex
	err     error
	delay   time.Duration
	calls   []string
	current string
}

func (f *fakeTranslator) ChangeLanguage(ctx context.Context, code string) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, code)
	if f.err != nil {
		return f.err
	}
	f.current = code
	return nil
}

type errStore struct {
	*store.MemoryStore
	getErr error
	setErr error
}

func (s *errStore) GetString(ctx context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	return s.MemoryStore.GetString(ctx, key)
}

func (s *errStore) Set(ctx context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.MemoryStore.Set(ctx, key, value)
}

// ---- tests ----

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, LTR, DirectionOf(English))
	assert.Equal(t, RTL, DirectionOf(Urdu))
	assert.Equal(t, LTR, DirectionOf("fr"))
}

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage("ur")
	require.NoError(t, err)
	assert.Equal(t, Urdu, l)

	_, err = ParseLanguage("UR")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
	_, err = ParseLanguage("")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestTheme(t *testing.T) {
	th := NewTheme()
	assert.Equal(t, LTR, th.Direction())
	th.SetDirection(Urdu)
	assert.Equal(t, RTL, th.Direction())
	th.SetDirection(English)
	assert.Equal(t, LTR, th.Direction())
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		persisted *string
		want      Language
	}{
		{"absent", nil, English},
		{"urdu", ptr("ur"), Urdu},
		{"english", ptr("en"), English},
		{"unknown code", ptr("de"), English},
		{"empty", ptr(""), English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewMemoryStore()
			if tt.persisted != nil {
				require.NoError(t, st.Set(context.Background(), common.LanguageKey, *tt.persisted))
			}
			tr := &fakeTranslator{}
			p := NewPreference(st, tr, nil, nil)

			p.Initialize(context.Background())

			assert.Equal(t, tt.want, p.Language())
			assert.Equal(t, DirectionOf(tt.want), p.Direction())
			assert.Equal(t, string(tt.want), tr.current)
		})
	}
}

func ptr(s string) *string { return &s }

func TestInitialize_StoreErrorFallsBack(t *testing.T) {
	st := &errStore{MemoryStore: store.NewMemoryStore(), getErr: errors.New("io")}
	p := NewPreference(st, nil, nil, nil)
	p.Initialize(context.Background())
	assert.Equal(t, English, p.Language())
	assert.Equal(t, LTR, p.Direction())
}

func TestInitialize_TranslatorErrorIsNotFatal(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(context.Background(), common.LanguageKey, "ur"))
	p := NewPreference(st, &fakeTranslator{err: errors.New("no bundle")}, nil, nil)

	p.Initialize(context.Background())
	assert.Equal(t, Urdu, p.Language())
	assert.Equal(t, RTL, p.Direction())
}

func TestChangeLanguage_UpdatesAllInOrder(t *testing.T) {
	st := store.NewMemoryStore()
	tr := &fakeTranslator{}
	theme := NewTheme()
	p := NewPreference(st, tr, theme, nil)
	ctx := context.Background()
	p.Initialize(ctx)

	var observed []Language
	unsub := p.Subscribe(func(l Language) {
		// observers run after memory and theme are updated
		assert.Equal(t, l, p.Language())
		assert.Equal(t, DirectionOf(l), theme.Direction())
		observed = append(observed, l)
	})
	defer unsub()

	require.NoError(t, p.ChangeLanguage(ctx, Urdu))

	v, ok, err := st.GetString(ctx, common.LanguageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ur", v)
	assert.Equal(t, "ur", tr.current)
	assert.Equal(t, Urdu, p.Language())
	assert.Equal(t, RTL, theme.Direction())

	require.NoError(t, p.ChangeLanguage(ctx, English))
	assert.Equal(t, LTR, theme.Direction())
	assert.Equal(t, []Language{Urdu, English}, observed)
}

func TestChangeLanguage_Unsupported(t *testing.T) {
	st := store.NewMemoryStore()
	tr := &fakeTranslator{}
	p := NewPreference(st, tr, nil, nil)

	err := p.ChangeLanguage(context.Background(), "fr")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, ok, _ := st.GetString(context.Background(), common.LanguageKey)
	assert.False(t, ok)
	assert.Empty(t, tr.calls)
}

func TestChangeLanguage_TranslatorFailureKeepsMemory(t *testing.T) {
	st := store.NewMemoryStore()
	boom := errors.New("bundle missing")
	tr := &fakeTranslator{}
	p := NewPreference(st, tr, nil, nil)
	ctx := context.Background()
	p.Initialize(ctx)

	tr.err = boom
	err := p.ChangeLanguage(ctx, Urdu)
	require.ErrorIs(t, err, boom)

	assert.Equal(t, English, p.Language())
	assert.Equal(t, LTR, p.Direction())

	// accepted inconsistency: the store already holds the new code
	v, _, _ := st.GetString(ctx, common.LanguageKey)
	assert.Equal(t, "ur", v)

	// a restart reconciles memory with the store
	tr.err = nil
	p.Initialize(ctx)
	assert.Equal(t, Urdu, p.Language())
	assert.Equal(t, RTL, p.Direction())
}

func TestChangeLanguage_PersistFailure(t *testing.T) {
	boom := errors.New("ro")
	st := &errStore{MemoryStore: store.NewMemoryStore(), setErr: boom}
	tr := &fakeTranslator{}
	p := NewPreference(st, tr, nil, nil)

	require.ErrorIs(t, p.ChangeLanguage(context.Background(), Urdu), boom)
	assert.Equal(t, English, p.Language())
	assert.Empty(t, tr.calls, "translator is not touched when persisting fails")
}

func TestChangeLanguage_Serialized(t *testing.T) {
	st := store.NewMemoryStore()
	tr := &fakeTranslator{delay: 5 * time.Millisecond}
	p := NewPreference(st, tr, nil, nil)
	ctx := context.Background()

	var (
		active, maxActive int
		mu                sync.Mutex
	)
	// observers fire inside the switch, so overlap would show up here
	p.Subscribe(func(Language) {
		mu.Lock()
		active++
		if active > maxActive {
			maxActive = active
		}
		mu.Unlock()
		time.Sleep(time.Millisecond)
		mu.Lock()
		active--
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lang := English
			if i%2 == 0 {
				lang = Urdu
			}
			assert.NoError(t, p.ChangeLanguage(ctx, lang))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive)
	assert.Len(t, tr.calls, 10)

	// memory, theme, translator and store agree on the last applied switch
	final := p.Language()
	assert.Equal(t, DirectionOf(final), p.Direction())
	assert.Equal(t, string(final), tr.current)
	v, _, _ := st.GetString(ctx, common.LanguageKey)
	assert.Equal(t, string(final), v)
}
