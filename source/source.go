// Package source reads translation files into stringsfile.Translation values.
//
// Supported formats, chosen by file extension:
//
//	.properties   key=value lines (Java style)
//	.yaml, .yml   nested maps, flattened with dots
//	.toml         nested tables, flattened with dots
//	.po           gettext catalogs (msgid → msgstr)
//
// A source directory holds one file per language named <lang>.<ext>:
//
//	translations/en.properties
//	translations/fr.yaml
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minios-linux/jargon/stringsfile"
)

// File is a translation source: the language it provides and where it lives.
type File struct {
	Lang string
	Path string
}

// parser turns raw file contents into a translation for lang.
type parser func(data []byte, lang string) (*stringsfile.Translation, error)

var parsers = map[string]parser{
	".properties": parseProperties,
	".yaml":       parseYAML,
	".yml":        parseYAML,
	".toml":       parseTOML,
	".po":         parsePO,
}

// Supported reports whether path has an extension this package can read.
func Supported(path string) bool {
	_, ok := parsers[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Parse parses data in the format implied by ext (".yaml", ".po", ...).
func Parse(data []byte, ext, lang string) (*stringsfile.Translation, error) {
	p, ok := parsers[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("unsupported translation format %q", ext)
	}
	return p(data, lang)
}

// LoadFile reads the translation file at path for lang.
func LoadFile(path, lang string) (*stringsfile.Translation, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("%s: unsupported translation format %q", path, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := Parse(data, filepath.Ext(path), lang)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// LoadAll loads files in order. The first failure aborts.
func LoadAll(files []File) ([]*stringsfile.Translation, error) {
	translations := make([]*stringsfile.Translation, 0, len(files))
	for _, f := range files {
		t, err := LoadFile(f.Path, f.Lang)
		if err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}
	return translations, nil
}

// Detect finds <lang>.<ext> translation files in dir, sorted by language.
// When several files share a language, the first one in directory order
// wins. A missing directory yields no files.
func Detect(dir string) []File {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var files []File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !Supported(name) {
			continue
		}
		lang := strings.TrimSuffix(name, filepath.Ext(name))
		if lang == "" || seen[lang] {
			continue
		}
		seen[lang] = true
		files = append(files, File{Lang: lang, Path: filepath.Join(dir, name)})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Lang < files[j].Lang })
	return files
}
