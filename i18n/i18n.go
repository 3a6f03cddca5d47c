// Package i18n translates jargon's own CLI messages.
//
// Catalogs are gettext .po files embedded from
// locales/{lang}/LC_MESSAGES/jargon.po and read with gotext. Messages
// without a translation are printed as written.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed all:locales
var locales embed.FS

const domain = "jargon"

var locale *gotext.Locale

// Init loads the catalog for lang. An empty lang is detected from
// LANGUAGE, LC_ALL, LC_MESSAGES and LANG, in that order.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}

	locale = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	locale.AddDomain(domain)
	locale.SetDomain(domain)
}

// T translates msgid, formatting it with vars like fmt.Sprintf.
func T(msgid string, vars ...any) string {
	if locale == nil {
		return sprintf(msgid, vars...)
	}
	return locale.Get(msgid, vars...)
}

// N translates a message with plural forms for count n.
func N(singular, plural string, n int, vars ...any) string {
	if locale == nil {
		if n == 1 {
			return sprintf(singular, vars...)
		}
		return sprintf(plural, vars...)
	}
	return locale.GetN(singular, plural, n, vars...)
}

// sprintf formats msgid only when there is something to format, so a
// literal % in a message without vars is left alone.
func sprintf(msgid string, vars ...any) string {
	if len(vars) == 0 {
		return msgid
	}
	return fmt.Sprintf(msgid, vars...)
}

// detectLanguage follows GNU gettext: LANGUAGE > LC_ALL > LC_MESSAGES > LANG.
func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		// LANGUAGE is a colon-separated list
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		// ru_RU.UTF-8 -> ru_RU
		val, _, _ = strings.Cut(val, ".")
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		return val
	}
	return "en"
}
