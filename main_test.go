package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/minios-linux/jargon/lockfile"
)

func clearJargonEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"JARGON_PROJECT", "JARGON_BASE_LANG", "JARGON_OUTPUT_DIR", "JARGON_SOURCE_DIR"} {
		os.Unsetenv(k)
		t.Cleanup(func() { os.Unsetenv(k) })
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

// newProject creates a project with English and French sources.
func newProject(t *testing.T) string {
	t.Helper()
	clearJargonEnv(t)
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, ".jargon.yaml"), "project: App\nlanguages: [en, fr]\n")
	writeTestFile(t, filepath.Join(dir, "translations", "en.properties"), "hello=Hello %s\nquote=Say \"hi\"\n")
	writeTestFile(t, filepath.Join(dir, "translations", "fr.yaml"), "hello: Bonjour %1$s\nquote: Dis %newline% salut\n")
	return dir
}

func TestWriteCommand(t *testing.T) {
	dir := newProject(t)

	if err := runCLI(t, "--root", dir, "write"); err != nil {
		t.Fatalf("write: %v", err)
	}

	en := readTestFile(t, filepath.Join(dir, "App", "en.lproj", "Localizable.strings"))
	if want := "\"hello\" = \"Hello %@\";\n\"quote\" = \"Say \\\"hi\\\"\";"; en != want {
		t.Errorf("en contents = %q, want %q", en, want)
	}
	fr := readTestFile(t, filepath.Join(dir, "App", "fr.lproj", "Localizable.strings"))
	if want := "\"hello\" = \"Bonjour %1$@\";\n\"quote\" = \"Dis \\n salut\";"; fr != want {
		t.Errorf("fr contents = %q, want %q", fr, want)
	}
	base := readTestFile(t, filepath.Join(dir, "App", "Base.lproj", "Localizable.strings"))
	if base != en {
		t.Errorf("Base.lproj contents = %q, want copy of en", base)
	}

	lf, err := lockfile.Load(dir)
	if err != nil {
		t.Fatalf("lockfile.Load: %v", err)
	}
	want := []string{
		"App/Base.lproj/Localizable.strings",
		"App/en.lproj/Localizable.strings",
		"App/fr.lproj/Localizable.strings",
	}
	if diff := cmp.Diff(want, lf.Keys()); diff != "" {
		t.Errorf("lock keys mismatch (-want +got):\n%s", diff)
	}
	if got := lf.Files["App/en.lproj/Localizable.strings"]; got != lockfile.Hash([]byte(en)) {
		t.Errorf("recorded hash %q does not match written file", got)
	}
}

func TestWriteCommandFlagOverrides(t *testing.T) {
	dir := newProject(t)

	if err := runCLI(t, "--root", dir, "write"); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := runCLI(t, "--root", dir, "write", "--lang", " fr ", "--base", "fr", "--output", "ios"); err != nil {
		t.Fatalf("second write: %v", err)
	}

	for _, rel := range []string{"fr.lproj", "Base.lproj"} {
		if _, err := os.Stat(filepath.Join(dir, "ios", "App", rel, "Localizable.strings")); err != nil {
			t.Errorf("%s not written under output dir: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "ios", "App", "en.lproj")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("en.lproj should not be written with --lang fr, stat err = %v", err)
	}

	lf, err := lockfile.Load(dir)
	if err != nil {
		t.Fatalf("lockfile.Load: %v", err)
	}
	want := []string{
		"ios/App/Base.lproj/Localizable.strings",
		"ios/App/fr.lproj/Localizable.strings",
	}
	if diff := cmp.Diff(want, lf.Keys()); diff != "" {
		t.Errorf("lock keys mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCommandUnknownBase(t *testing.T) {
	dir := newProject(t)

	if err := runCLI(t, "--root", dir, "write", "--base", "de", "--no-lock"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "App", "Base.lproj")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Base.lproj should not exist, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, lockfile.LockFileName)); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("lock file written despite --no-lock, stat err = %v", err)
	}
}

func TestWriteCommandStopsOnFilesystemError(t *testing.T) {
	dir := newProject(t)
	writeTestFile(t, filepath.Join(dir, "App", "fr.lproj"), "not a directory")

	err := runCLI(t, "--root", dir, "write")
	if err == nil {
		t.Fatal("expected error")
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected *fs.PathError, got %T: %v", err, err)
	}

	if _, err := os.Stat(filepath.Join(dir, "App", "en.lproj", "Localizable.strings")); err != nil {
		t.Errorf("en file written before the failure should remain: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, lockfile.LockFileName)); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("lock file should not be written after a failure, stat err = %v", err)
	}
}

func TestWriteCommandInvalidConfig(t *testing.T) {
	clearJargonEnv(t)
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "translations", "en.properties"), "k=v\n")

	err := runCLI(t, "--root", dir, "write")
	if err == nil || !strings.Contains(err.Error(), "project is required") {
		t.Fatalf("write error = %v, want project validation error", err)
	}

	if err := runCLI(t, "--root", dir, "write", "--project", "App"); err != nil {
		t.Fatalf("write with --project: %v", err)
	}
}

func TestStatusCommand(t *testing.T) {
	dir := newProject(t)

	if err := runCLI(t, "--root", dir, "status"); err != nil {
		t.Fatalf("status before write: %v", err)
	}
	if err := runCLI(t, "--root", dir, "write"); err != nil {
		t.Fatalf("write: %v", err)
	}
	writeTestFile(t, filepath.Join(dir, "App", "fr.lproj", "Localizable.strings"), "edited")
	if err := runCLI(t, "--root", dir, "status"); err != nil {
		t.Fatalf("status after write: %v", err)
	}
}

func TestTrimLanguages(t *testing.T) {
	got := trimLanguages([]string{" en", "", "fr ", "  "})
	if diff := cmp.Diff([]string{"en", "fr"}, got); diff != "" {
		t.Errorf("trimLanguages mismatch (-want +got):\n%s", diff)
	}
}
