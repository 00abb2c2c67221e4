// Package i18n is the translation engine of the CLI. It keeps an English
// and an Urdu message table in an x/text catalog and formats messages for
// the active language.
package i18n

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// ErrUnsupported is returned by ChangeLanguage for codes that match none of
// the supported languages.
var ErrUnsupported = errors.New("unsupported language")

var supported = []language.Tag{language.English, language.Urdu}

// Translator is safe for concurrent use.
type Translator struct {
	mu      sync.RWMutex
	tag     language.Tag
	printer *message.Printer

	catalog catalog.Catalog
	matcher language.Matcher
}

// New returns a Translator with English active.
func New() *Translator {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	load(b, language.English, english)
	load(b, language.Urdu, withFallback(urdu, english))

	t := &Translator{
		catalog: b,
		matcher: language.NewMatcher(supported),
	}
	t.set(language.English)
	return t
}

func load(b *catalog.Builder, tag language.Tag, table map[string]string) {
	for k, v := range table {
		// SetString only fails for malformed tags, and these are constants
		_ = b.SetString(tag, k, v)
	}
}

// withFallback fills keys missing from table with their fallback values.
func withFallback(table, fallback map[string]string) map[string]string {
	out := make(map[string]string, len(fallback))
	for k, v := range fallback {
		out[k] = v
	}
	for k, v := range table {
		out[k] = v
	}
	return out
}

func (t *Translator) set(tag language.Tag) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tag = tag
	t.printer = message.NewPrinter(tag, message.Catalog(t.catalog))
}

// ChangeLanguage activates the supported language best matching code
// (e.g. "ur-PK" selects Urdu).
func (t *Translator) ChangeLanguage(ctx context.Context, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	requested, err := language.Parse(code)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupported, code)
	}

	_, idx, conf := t.matcher.Match(requested)
	if conf == language.No {
		return fmt.Errorf("%w: %q", ErrUnsupported, code)
	}

	t.set(supported[idx])
	return nil
}

// Language is the base code of the active language ("en" or "ur").
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	base, _ := t.tag.Base()
	return base.String()
}

// T formats the message for key in the active language.
func (t *Translator) T(key string, args ...any) string {
	t.mu.RLock()
	p := t.printer
	t.mu.RUnlock()
	return p.Sprintf(key, args...)
}
