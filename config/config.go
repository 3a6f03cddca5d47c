// Package config reads the .jargon.yaml project configuration.
//
// Settings are layered, later layers winning:
//
//  1. built-in defaults
//  2. .jargon.yaml in the project root
//  3. JARGON_* environment variables (an optional .env file in the project
//     root is loaded first)
//  4. command-line flags (applied by the caller)
//
// Example:
//
//	project: MyApp
//	base_lang: en
//	output_dir: ios
//	source_dir: translations
//	languages: [en, fr, de]
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"github.com/minios-linux/jargon/stringsfile"
)

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// File is the top-level .jargon.yaml structure.
type File struct {
	// Project is the directory name the .lproj folders are written into.
	Project string `yaml:"project"`
	// BaseLang selects the language copied to Base.lproj. "default" picks
	// the first source; an unknown language produces no base file.
	BaseLang string `yaml:"base_lang,omitempty"`
	// OutputDir is the directory the project folder is created in,
	// relative to the project root (default ".").
	OutputDir string `yaml:"output_dir,omitempty"`
	// SourceDir holds <lang>.<ext> translation files, relative to the
	// project root (default "translations"). Ignored when Sources is set.
	SourceDir string `yaml:"source_dir,omitempty"`
	// Languages restricts and orders the auto-detected languages.
	Languages []string `yaml:"languages,omitempty"`
	// Sources lists translation files explicitly, in output order.
	Sources []Source `yaml:"sources,omitempty"`

	// path is where the file was read from; empty when none exists.
	path string
}

// Source is an explicitly configured translation file.
type Source struct {
	Lang string `yaml:"lang"`
	File string `yaml:"file"`
}

// FileName is the default config file name.
const FileName = ".jargon.yaml"

// DefaultSourceDir is used when neither sources nor source_dir are set.
const DefaultSourceDir = "translations"

// envOverrides are the environment variables that override file values.
type envOverrides struct {
	Project   string `env:"JARGON_PROJECT"`
	BaseLang  string `env:"JARGON_BASE_LANG"`
	OutputDir string `env:"JARGON_OUTPUT_DIR"`
	SourceDir string `env:"JARGON_SOURCE_DIR"`
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load reads rootDir/.jargon.yaml and applies environment overrides and
// defaults. A missing config file is not an error; the result then only
// carries defaults and environment values. The result is not validated,
// so callers can apply flag overrides before calling Validate.
func Load(ctx context.Context, rootDir string) (*File, error) {
	return LoadFile(ctx, rootDir, filepath.Join(rootDir, FileName))
}

// LoadFile is like Load but reads the config from an explicit path.
func LoadFile(ctx context.Context, rootDir, path string) (*File, error) {
	envPath := filepath.Join(rootDir, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envPath, err)
	}

	f := &File{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		f.path = path
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var env envOverrides
	if err := envconfig.Process(ctx, &env); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	f.applyEnv(env)
	f.applyDefaults()
	return f, nil
}

func (f *File) applyEnv(env envOverrides) {
	if env.Project != "" {
		f.Project = env.Project
	}
	if env.BaseLang != "" {
		f.BaseLang = env.BaseLang
	}
	if env.OutputDir != "" {
		f.OutputDir = env.OutputDir
	}
	if env.SourceDir != "" {
		f.SourceDir = env.SourceDir
	}
}

func (f *File) applyDefaults() {
	if f.BaseLang == "" {
		f.BaseLang = stringsfile.DefaultBase
	}
	if f.OutputDir == "" {
		f.OutputDir = "."
	}
	if f.SourceDir == "" && len(f.Sources) == 0 {
		f.SourceDir = DefaultSourceDir
	}
}

// Path returns the config file that was read, or "" if none existed.
func (f *File) Path() string {
	return f.path
}
