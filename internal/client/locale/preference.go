package locale

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/emergency15/internal/client/store"
	"github.com/dmitrijs2005/emergency15/internal/common"
	"github.com/dmitrijs2005/emergency15/internal/logging"
)

// Translator is the translation engine whose active locale follows the
// preference.
type Translator interface {
	ChangeLanguage(ctx context.Context, code string) error
}

// Preference owns the selected language. Language switches are serialized:
// concurrent ChangeLanguage calls queue and apply in the order they acquire
// the switch lock.
type Preference struct {
	switchMu sync.Mutex

	mu       sync.RWMutex
	language Language

	store      store.Store
	translator Translator
	theme      *Theme
	log        logging.Logger

	obsMu     sync.Mutex
	observers map[int]func(Language)
	nextObs   int
}

func NewPreference(s store.Store, tr Translator, theme *Theme, log logging.Logger) *Preference {
	if theme == nil {
		theme = NewTheme()
	}
	if log == nil {
		log = logging.NewDiscard()
	}
	return &Preference{
		language:   Default,
		store:      s,
		translator: tr,
		theme:      theme,
		log:        log.With("component", "locale"),
		observers:  make(map[int]func(Language)),
	}
}

func (p *Preference) Language() Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.language
}

func (p *Preference) Direction() Direction {
	return p.theme.Direction()
}

func (p *Preference) Theme() *Theme {
	return p.theme
}

// Subscribe registers fn to run after every successful language switch.
// fn runs while the switch lock is held and must not call ChangeLanguage.
func (p *Preference) Subscribe(fn func(Language)) func() {
	p.obsMu.Lock()
	defer p.obsMu.Unlock()

	id := p.nextObs
	p.nextObs++
	p.observers[id] = fn

	return func() {
		p.obsMu.Lock()
		defer p.obsMu.Unlock()
		delete(p.observers, id)
	}
}

func (p *Preference) notify(l Language) {
	p.obsMu.Lock()
	fns := make([]func(Language), 0, len(p.observers))
	for _, fn := range p.observers {
		fns = append(fns, fn)
	}
	p.obsMu.Unlock()

	for _, fn := range fns {
		fn(l)
	}
}

// Initialize loads the persisted language. Absent, unknown or unreadable
// values fall back to Default. The translator is switched best-effort and
// the theme always follows the resulting language.
func (p *Preference) Initialize(ctx context.Context) {
	p.switchMu.Lock()
	defer p.switchMu.Unlock()

	lang := Default
	code, ok, err := p.store.GetString(ctx, common.LanguageKey)
	switch {
	case err != nil:
		p.log.Error(ctx, "failed to read language", "error", err)
	case !ok:
	default:
		if l, perr := ParseLanguage(code); perr == nil {
			lang = l
		} else {
			p.log.Warn(ctx, "ignoring persisted language", "code", code)
		}
	}

	if p.translator != nil {
		if err := p.translator.ChangeLanguage(ctx, string(lang)); err != nil {
			p.log.Warn(ctx, "translator did not accept language", "language", lang, "error", err)
		}
	}

	p.mu.Lock()
	p.language = lang
	p.mu.Unlock()
	p.theme.SetDirection(lang)
}

// ChangeLanguage switches to lang. Steps run in order: persist, switch the
// translator, update memory, update the theme. A translator failure is
// returned and memory keeps the previous language, while the store already
// holds the new code until the next successful switch or restart.
func (p *Preference) ChangeLanguage(ctx context.Context, lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	p.switchMu.Lock()
	defer p.switchMu.Unlock()

	if err := p.store.Set(ctx, common.LanguageKey, string(lang)); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}

	if p.translator != nil {
		if err := p.translator.ChangeLanguage(ctx, string(lang)); err != nil {
			p.log.Warn(ctx, "language switch failed", "language", lang, "error", err)
			return fmt.Errorf("switch translator to %s: %w", lang, err)
		}
	}

	p.mu.Lock()
	p.language = lang
	p.mu.Unlock()
	p.theme.SetDirection(lang)

	p.log.Info(ctx, "language changed", "language", lang, "direction", DirectionOf(lang))
	p.notify(lang)
	return nil
}
