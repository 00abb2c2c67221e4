// Package locale holds the language preference and the text direction
// derived from it.
package locale

import "errors"

// ErrUnsupportedLanguage is returned for language codes outside Supported.
var ErrUnsupportedLanguage = errors.New("unsupported language")

type Language string

const (
	English Language = "en"
	Urdu    Language = "ur"
)

// Default is used when nothing valid is persisted.
const Default = English

// Supported lists the selectable languages in display order.
var Supported = []Language{English, Urdu}

func (l Language) Valid() bool {
	switch l {
	case English, Urdu:
		return true
	}
	return false
}

// ParseLanguage validates a language code.
func ParseLanguage(code string) (Language, error) {
	l := Language(code)
	if !l.Valid() {
		return "", ErrUnsupportedLanguage
	}
	return l, nil
}

type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// DirectionOf derives the text direction of a language.
func DirectionOf(l Language) Direction {
	if l == Urdu {
		return RTL
	}
	return LTR
}
