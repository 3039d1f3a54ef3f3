package i18n

import (
	"fmt"
	"strings"
)

type Lang string

const (
	Portuguese Lang = "pt"
	English    Lang = "en"
	Spanish    Lang = "es"
)

// Default is used when a chat or request has no language yet.
const Default = Portuguese

var Supported = []Lang{Portuguese, English, Spanish}

// Parse accepts a language code in any case.
func Parse(s string) (Lang, bool) {
	l := Lang(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := messages[l]; ok {
		return l, true
	}
	return "", false
}

type Translator struct {
	lang Lang
}

// For returns a translator for s, falling back to Default for unknown codes.
func For(s string) Translator {
	l, ok := Parse(s)
	if !ok {
		l = Default
	}
	return Translator{lang: l}
}

func (t Translator) Lang() Lang {
	return t.lang
}

// Label looks key up in the translator's language, then in English. Unknown
// keys are returned unchanged.
func (t Translator) Label(key string) string {
	if s, ok := messages[t.lang][key]; ok {
		return s
	}
	if s, ok := messages[English][key]; ok {
		return s
	}
	return key
}

func (t Translator) Format(key string, args ...any) string {
	return fmt.Sprintf(t.Label(key), args...)
}
