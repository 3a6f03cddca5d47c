// Command jargon generates iOS Localizable.strings files from translation sources.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/minios-linux/jargon/config"
	"github.com/minios-linux/jargon/i18n"
	"github.com/minios-linux/jargon/langmeta"
	"github.com/minios-linux/jargon/lockfile"
	"github.com/minios-linux/jargon/source"
	"github.com/minios-linux/jargon/stringsfile"
	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jargon",
		Short: "Generate iOS Localizable.strings files from translation sources",
		Long: `jargon generates iOS Localizable.strings files from translation sources.

Reads one translation file per language (.properties, .yaml, .toml, .po)
and writes <project>/<lang>.lproj/Localizable.strings for each of them,
plus <project>/Base.lproj/Localizable.strings for the base language.

Android-style format specifiers (%s, %1$s) are converted to their iOS
equivalents (%@, %1$@), and %newline% placeholders become \n.

Commands:
  write       Generate the .strings files
  status      Show configuration, languages and generated file state
  version     Show version information

Configuration is read from .jargon.yaml in the project root, overridden by
JARGON_* environment variables (and an optional .env file), then by flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag, inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newWriteCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logError("%v", err)
		stop()
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("jargon version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// Configuration flags shared by write and status
// ---------------------------------------------------------------------------

type configArgs struct {
	configPath string
	project    string
	baseLang   string
	outputDir  string
	sourceDir  string
	languages  []string
}

func (a *configArgs) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.configPath, "config", "c", "", "Config file (default <root>/"+config.FileName+")")
	cmd.Flags().StringVarP(&a.project, "project", "p", "", "Project directory name")
	cmd.Flags().StringVarP(&a.baseLang, "base", "b", "", `Language copied to Base.lproj ("default" = first language)`)
	cmd.Flags().StringVarP(&a.outputDir, "output", "o", "", "Output directory, relative to the root")
	cmd.Flags().StringVar(&a.sourceDir, "source-dir", "", "Directory with <lang>.<ext> translation files")
	cmd.Flags().StringSliceVarP(&a.languages, "lang", "l", nil, "Languages to write, in order (comma-separated)")
}

// load reads the configuration, applies flag overrides and validates it.
func (a *configArgs) load(ctx context.Context) (*config.File, error) {
	var (
		cfg *config.File
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(ctx, rootDir, a.configPath)
	} else {
		cfg, err = config.Load(ctx, rootDir)
	}
	if err != nil {
		return nil, err
	}

	if a.project != "" {
		cfg.Project = a.project
	}
	if a.baseLang != "" {
		cfg.BaseLang = a.baseLang
	}
	if a.outputDir != "" {
		cfg.OutputDir = a.outputDir
	}
	if a.sourceDir != "" {
		cfg.SourceDir = a.sourceDir
		cfg.Sources = nil
	}
	if len(a.languages) > 0 {
		cfg.Languages = trimLanguages(a.languages)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s\n%w", i18n.T("invalid configuration:"), err)
	}
	return cfg, nil
}

// trimLanguages strips whitespace and drops empty entries.
func trimLanguages(langs []string) []string {
	var out []string
	for _, l := range langs {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// write (generate Localizable.strings files)
// ---------------------------------------------------------------------------

func newWriteCmd() *cobra.Command {
	var (
		args   configArgs
		noLock bool
	)

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Generate Localizable.strings files",
		Long: `Load every configured translation and write one Localizable.strings
per language, followed by Base.lproj for the base language.

Existing files are overwritten. The first failure stops the run; files
written before it are left on disk. Unless --no-lock is given, checksums of
the generated files are recorded in ` + lockfile.LockFileName + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := args.load(cmd.Context())
			if err != nil {
				return err
			}
			return runWrite(cfg, !noLock)
		},
	}

	args.register(cmd)
	cmd.Flags().BoolVar(&noLock, "no-lock", false, "Do not update "+lockfile.LockFileName)

	return cmd
}

func runWrite(cfg *config.File, updateLock bool) error {
	files, err := cfg.Resolve(rootDir)
	if err != nil {
		return err
	}
	for _, f := range files {
		if !langmeta.Resolve(f.Lang).Valid {
			logWarning("%s", i18n.T("%s is not a valid language tag, using it as is", f.Lang))
		}
	}

	translations, err := source.LoadAll(files)
	if err != nil {
		return err
	}

	outRoot, err := cfg.OutputRoot(rootDir)
	if err != nil {
		return err
	}

	logInfo("%s", i18n.N("Writing %d language for %s...", "Writing %d languages for %s...", len(translations), len(translations), cfg.Project))

	paths, err := stringsfile.WriteAll(outRoot, translations, cfg.Project, cfg.BaseLang)
	if err != nil {
		return err
	}

	base := stringsfile.SelectBase(translations, cfg.BaseLang)
	for i, p := range paths {
		if i < len(translations) {
			logSuccess("%s  %s", langmeta.Label(translations[i].Lang), p)
		} else {
			logSuccess("%s  %s", i18n.T("base (%s)", base.Lang), p)
		}
	}
	if base == nil && len(translations) > 0 {
		logWarning("%s", i18n.T("No translation matches base language %q, Base.lproj was not written", cfg.BaseLang))
	}

	if !updateLock {
		return nil
	}
	return recordLock(translations, base, paths)
}

// recordLock stores checksums of the generated files and reports files from
// earlier runs that are no longer generated.
func recordLock(translations []*stringsfile.Translation, base *stringsfile.Translation, paths []string) error {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return err
	}
	lf, err := lockfile.Load(absRoot)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(paths))
	for i, p := range paths {
		t := base
		if i < len(translations) {
			t = translations[i]
		}
		key, err := lockfile.FileKey(absRoot, p)
		if err != nil {
			return err
		}
		lf.Record(key, stringsfile.Marshal(t))
		keys = append(keys, key)
	}

	for _, stale := range lf.Stale(keys) {
		logWarning("%s", i18n.T("%s is no longer generated", stale))
	}
	lf.Clean(keys)

	return lf.Save()
}

// ---------------------------------------------------------------------------
// status (read-only: configuration, languages, generated files)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	var args configArgs

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show configuration, languages and generated file state",
		Long: `Show the resolved configuration, the translation files that would be
written and, when a lock file exists, whether the generated files were edited
or removed since the last write. Does not modify any files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := args.load(cmd.Context())
			if err != nil {
				return err
			}
			return runStatus(cfg)
		},
	}

	args.register(cmd)
	return cmd
}

func runStatus(cfg *config.File) error {
	files, err := cfg.Resolve(rootDir)
	if err != nil {
		return err
	}
	translations, err := source.LoadAll(files)
	if err != nil {
		return err
	}
	outRoot, err := cfg.OutputRoot(rootDir)
	if err != nil {
		return err
	}
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n%s%s%s\n", colorBlue, i18n.T("Project"), colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintf(os.Stderr, "  %-12s %s\n", i18n.T("Name:"), cfg.Project)
	fmt.Fprintf(os.Stderr, "  %-12s %s\n", i18n.T("Root:"), absRoot)
	if cfg.Path() != "" {
		fmt.Fprintf(os.Stderr, "  %-12s %s\n", i18n.T("Config:"), cfg.Path())
	}
	fmt.Fprintf(os.Stderr, "  %-12s %s\n", i18n.T("Output:"), filepath.Join(outRoot, cfg.Project))

	baseDesc := i18n.T("none")
	if base := stringsfile.SelectBase(translations, cfg.BaseLang); base != nil {
		baseDesc = langmeta.Label(base.Lang)
	}
	fmt.Fprintf(os.Stderr, "  %-12s %s (%s)\n", i18n.T("Base:"), baseDesc, cfg.BaseLang)
	fmt.Fprintln(os.Stderr)

	width := langColumnWidth(translations)
	for i, t := range translations {
		rel, err := filepath.Rel(absRoot, files[i].Path)
		if err != nil {
			rel = files[i].Path
		}
		fmt.Fprintf(os.Stderr, "  %-*s  %s  %s\n", width, langmeta.Label(t.Lang),
			i18n.N("%d string", "%d strings", t.Len(), t.Len()), rel)
	}
	fmt.Fprintln(os.Stderr)

	lf, err := lockfile.Load(absRoot)
	if err != nil {
		return err
	}
	if len(lf.Keys()) == 0 {
		logInfo("%s", i18n.T("Nothing generated yet. Run 'jargon write'."))
		return nil
	}

	statuses, err := lf.Check(absRoot)
	if err != nil {
		return err
	}
	dirty := 0
	for _, st := range statuses {
		if st.State == lockfile.StateClean {
			continue
		}
		dirty++
		logWarning("%s: %s", st.Key, stateLabel(st.State))
	}

	expected, err := expectedKeys(outRoot, absRoot, cfg, translations)
	if err != nil {
		return err
	}
	for _, stale := range lf.Stale(expected) {
		logWarning("%s", i18n.T("%s is no longer generated", stale))
	}

	if dirty == 0 {
		logSuccess("%s", i18n.N("%d generated file is up to date", "%d generated files are up to date", len(statuses), len(statuses)))
	}
	return nil
}

// expectedKeys returns the lock keys that a write with cfg would produce.
func expectedKeys(outRoot, absRoot string, cfg *config.File, translations []*stringsfile.Translation) ([]string, error) {
	var keys []string
	add := func(lang string, isBase bool) error {
		p, err := stringsfile.Path(outRoot, cfg.Project, lang, isBase)
		if err != nil {
			return err
		}
		key, err := lockfile.FileKey(absRoot, p)
		if err != nil {
			return err
		}
		keys = append(keys, key)
		return nil
	}

	for _, t := range translations {
		if err := add(t.Lang, false); err != nil {
			return nil, err
		}
	}
	if base := stringsfile.SelectBase(translations, cfg.BaseLang); base != nil {
		if err := add(base.Lang, true); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func stateLabel(s lockfile.FileState) string {
	switch s {
	case lockfile.StateModified:
		return i18n.T("modified")
	case lockfile.StateMissing:
		return i18n.T("missing")
	}
	return s.String()
}

// langColumnWidth returns the widest language label.
func langColumnWidth(translations []*stringsfile.Translation) int {
	width := 0
	for _, t := range translations {
		if w := len([]rune(langmeta.Label(t.Lang))); w > width {
			width = w
		}
	}
	return width
}
