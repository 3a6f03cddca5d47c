package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/minios-linux/jargon/source"
)

// Validate reports every problem in f at once.
func (f *File) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(f.Project) == "" {
		result = multierror.Append(result, fmt.Errorf("project is required"))
	}
	if p := strings.TrimSpace(f.Project); strings.ContainsAny(p, `/\`) || p == "." || p == ".." {
		result = multierror.Append(result, fmt.Errorf("project %q must be a single directory name", f.Project))
	}
	if f.BaseLang == "" {
		result = multierror.Append(result, fmt.Errorf("base_lang must not be empty"))
	}

	seen := make(map[string]bool)
	for i, s := range f.Sources {
		if s.Lang == "" {
			result = multierror.Append(result, fmt.Errorf("source #%d has no lang", i+1))
		}
		if s.File == "" {
			result = multierror.Append(result, fmt.Errorf("source #%d (%s) has no file", i+1, s.Lang))
		} else if !source.Supported(s.File) {
			result = multierror.Append(result, fmt.Errorf("source #%d (%s): unsupported format %q", i+1, s.Lang, filepath.Ext(s.File)))
		}
		if s.Lang != "" && seen[s.Lang] {
			result = multierror.Append(result, fmt.Errorf("language %q is listed more than once in sources", s.Lang))
		}
		seen[s.Lang] = true
	}

	seenLang := make(map[string]bool)
	for _, lang := range f.Languages {
		if seenLang[lang] {
			result = multierror.Append(result, fmt.Errorf("language %q is listed more than once in languages", lang))
		}
		seenLang[lang] = true
	}

	return result.ErrorOrNil()
}

// Resolve returns the translation files to load, in output order, with
// paths made absolute against rootDir.
//
// Explicit sources are used as listed. Otherwise files are detected in
// SourceDir and ordered by Languages when set (unlisted languages are
// dropped), or by language code.
func (f *File) Resolve(rootDir string) ([]source.File, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}

	if len(f.Sources) > 0 {
		files := make([]source.File, 0, len(f.Sources))
		for _, s := range f.Sources {
			files = append(files, source.File{Lang: s.Lang, Path: absPath(absRoot, s.File)})
		}
		return f.filterLanguages(files)
	}

	dir := absPath(absRoot, f.SourceDir)
	detected := source.Detect(dir)
	if len(detected) == 0 {
		return nil, fmt.Errorf("no translation files found in %s", dir)
	}
	return f.filterLanguages(detected)
}

// filterLanguages reorders files to match f.Languages. A listed language
// without a file is an error.
func (f *File) filterLanguages(files []source.File) ([]source.File, error) {
	if len(f.Languages) == 0 {
		return files, nil
	}

	byLang := make(map[string]source.File, len(files))
	for _, file := range files {
		byLang[file.Lang] = file
	}

	var result []source.File
	var missing []string
	for _, lang := range f.Languages {
		file, ok := byLang[lang]
		if !ok {
			missing = append(missing, lang)
			continue
		}
		result = append(result, file)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("no translation file for languages: %s", strings.Join(missing, ", "))
	}
	return result, nil
}

// OutputRoot returns the absolute output directory.
func (f *File) OutputRoot(rootDir string) (string, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return "", err
	}
	return absPath(absRoot, f.OutputDir), nil
}

func absPath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
