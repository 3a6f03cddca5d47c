// Package langmeta provides language display metadata for the CLI.
//
// Names come from the CLDR data in golang.org/x/text, so any valid BCP-47
// tag (en, pt-BR, zh-Hant) resolves to its native name. Language codes are
// never rewritten: the .lproj directory always uses the code as given.
package langmeta

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Meta describes language display metadata.
type Meta struct {
	// Code is the language code as given.
	Code string
	// Name is the native language name, or Code when unknown.
	Name string
	// Valid reports whether Code parses as a BCP-47 tag.
	Valid bool
}

// Resolve returns best-effort metadata for lang. Underscore variants like
// pt_BR are accepted for name lookup.
func Resolve(lang string) Meta {
	m := Meta{Code: lang, Name: lang}
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
	if err != nil {
		return m
	}
	m.Valid = true
	if name := display.Self.Name(tag); name != "" {
		m.Name = name
	}
	return m
}

// Label returns "code (Name)", or just the code when no name is known.
func Label(lang string) string {
	m := Resolve(lang)
	if m.Name == "" || m.Name == lang {
		return lang
	}
	return lang + " (" + m.Name + ")"
}
