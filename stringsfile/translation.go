// Package stringsfile writes iOS Localizable.strings files.
//
// Each language is emitted as a separate file inside an .lproj directory of
// the project:
//
//	<root>/<project>/en.lproj/Localizable.strings
//	<root>/<project>/fr.lproj/Localizable.strings
//	<root>/<project>/Base.lproj/Localizable.strings  (copy of the base language)
//
// Every key/value pair becomes one line of the form
//
//	"key" = "value";
//
// with Android-style format specifiers (%s, %1$s) rewritten to their
// Objective-C equivalents (%@, %1$@) and quotes/newlines escaped.
package stringsfile

import "sort"

// ---------------------------------------------------------------------------
// Data model
// ---------------------------------------------------------------------------

// Entry is a single key/value pair of a translation.
type Entry struct {
	Key   string
	Value string
}

// Translation holds one language's complete set of localized strings.
// Entries keep insertion order, which is also the output order.
type Translation struct {
	// Lang is the language identifier used as the .lproj directory name.
	Lang string

	entries []Entry
	// index maps key → index in entries.
	index map[string]int
}

// NewTranslation returns an empty translation for lang.
func NewTranslation(lang string) *Translation {
	return &Translation{Lang: lang, index: make(map[string]int)}
}

// FromMap builds a translation from an unordered map. Keys are inserted in
// sorted order so that the generated file is reproducible.
func FromMap(lang string, m map[string]string) *Translation {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := NewTranslation(lang)
	for _, k := range keys {
		t.Set(k, m[k])
	}
	return t
}

// Set stores value for key. An existing key keeps its position.
func (t *Translation) Set(key, value string) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if idx, ok := t.index[key]; ok {
		t.entries[idx].Value = value
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Value: value})
}

// Get returns the value for key and whether it was found.
func (t *Translation) Get(key string) (string, bool) {
	idx, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.entries[idx].Value, true
}

// Entries returns a copy of the entries in output order.
func (t *Translation) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Keys returns all keys in output order.
func (t *Translation) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Len returns the number of entries.
func (t *Translation) Len() int { return len(t.entries) }
