package stringsfile

import (
	"os"
	"path/filepath"
)

// DefaultBase selects the first translation as the base language.
const DefaultBase = "default"

// FileName is the name of every generated strings file.
const FileName = "Localizable.strings"

// baseDirName is the .lproj directory name used for the base copy.
const baseDirName = "Base"

// ---------------------------------------------------------------------------
// Paths
// ---------------------------------------------------------------------------

// LprojDirName returns the .lproj directory name for lang, or Base.lproj
// when isBase is set.
func LprojDirName(lang string, isBase bool) string {
	if isBase {
		return baseDirName + ".lproj"
	}
	return lang + ".lproj"
}

// Path returns the absolute location of the strings file for lang:
//
//	<root>/<project>/<lang|Base>.lproj/Localizable.strings
//
// A relative root is resolved against the current working directory.
func Path(root, project, lang string, isBase bool) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	return filepath.Join(absRoot, project, LprojDirName(lang, isBase), FileName), nil
}

// ---------------------------------------------------------------------------
// Writing
// ---------------------------------------------------------------------------

// Write writes t to its strings file under root/project, creating missing
// directories and replacing any existing file. With isBase the file goes to
// Base.lproj instead of <lang>.lproj. Filesystem errors are returned as is.
func Write(root, project string, t *Translation, isBase bool) (string, error) {
	path, err := Path(root, project, t.Lang, isBase)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, Marshal(t), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// SelectBase picks the translation that is copied to Base.lproj.
// DefaultBase selects the first translation; any other value selects the
// first translation with that language. Nil means no base file.
func SelectBase(translations []*Translation, baseLang string) *Translation {
	if baseLang == DefaultBase {
		if len(translations) == 0 {
			return nil
		}
		return translations[0]
	}
	for _, t := range translations {
		if t.Lang == baseLang {
			return t
		}
	}
	return nil
}

// WriteAll writes one strings file per translation, in order, followed by
// the base copy selected by baseLang (see SelectBase). It returns the
// written paths in the same order. The first failure stops the run; files
// written before it are left in place.
func WriteAll(root string, translations []*Translation, project, baseLang string) ([]string, error) {
	paths := make([]string, 0, len(translations)+1)
	for _, t := range translations {
		path, err := Write(root, project, t, false)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	if base := SelectBase(translations, baseLang); base != nil {
		path, err := Write(root, project, base, true)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
