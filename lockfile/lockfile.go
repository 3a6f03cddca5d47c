// Package lockfile implements jargon.lock, a record of every generated
// strings file and the MD5 checksum of the contents jargon wrote to it.
//
// The lock file makes hand edits and leftovers visible: a file whose
// on-disk checksum differs from the recorded one was modified after
// generation, and a recorded file that the current configuration no longer
// produces is stale. jargon never reads it to decide whether to write;
// generated files are always overwritten.
//
// The lock file is stored in the project root as jargon.lock.
package lockfile

import (
	"crypto/md5"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// LockFileName is the default lock file name.
const LockFileName = "jargon.lock"

// Version is the lock file format version.
const Version = 1

// ---------------------------------------------------------------------------
// Types
// ---------------------------------------------------------------------------

// LockFile represents the jargon.lock file structure.
type LockFile struct {
	Version int               `yaml:"version"`
	Files   map[string]string `yaml:"files"` // slash path relative to project root -> md5

	mu   sync.Mutex `yaml:"-"`
	path string     `yaml:"-"`
}

// FileState describes how a recorded file compares to the disk.
type FileState int

const (
	// StateClean means the file matches the recorded checksum.
	StateClean FileState = iota
	// StateModified means the file was changed after generation.
	StateModified
	// StateMissing means the file no longer exists.
	StateMissing
)

func (s FileState) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateModified:
		return "modified"
	case StateMissing:
		return "missing"
	}
	return "unknown"
}

// FileStatus is the result of checking one recorded file.
type FileStatus struct {
	Key   string
	State FileState
}

// ---------------------------------------------------------------------------
// Loading and saving
// ---------------------------------------------------------------------------

// Load reads a lock file from the given directory.
// Returns an empty lock file if the file doesn't exist.
func Load(dir string) (*LockFile, error) {
	path := filepath.Join(dir, LockFileName)
	lf := &LockFile{
		Version: Version,
		Files:   make(map[string]string),
		path:    path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lf, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, lf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if lf.Version > Version {
		return nil, fmt.Errorf("%s: unsupported lock file version %d", path, lf.Version)
	}
	if lf.Files == nil {
		lf.Files = make(map[string]string)
	}

	return lf, nil
}

// Save writes the lock file to disk.
func (lf *LockFile) Save() error {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	if lf.path == "" {
		return fmt.Errorf("lock file path not set")
	}

	data, err := yaml.Marshal(lf)
	if err != nil {
		return fmt.Errorf("marshaling lock file: %w", err)
	}

	if err := os.WriteFile(lf.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", lf.path, err)
	}

	return nil
}

// Path returns the lock file path.
func (lf *LockFile) Path() string {
	return lf.path
}

// ---------------------------------------------------------------------------
// Checksum operations
// ---------------------------------------------------------------------------

// Hash computes the MD5 hex digest of data.
func Hash(data []byte) string {
	return fmt.Sprintf("%x", md5.Sum(data))
}

// FileKey builds the lock key of a generated file: its path relative to the
// project root, with forward slashes.
func FileKey(projectRoot, path string) (string, error) {
	rel, err := filepath.Rel(projectRoot, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// Record stores the checksum of contents written to key.
func (lf *LockFile) Record(key string, contents []byte) {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	lf.Files[key] = Hash(contents)
}

// Keys returns the recorded file keys, sorted.
func (lf *LockFile) Keys() []string {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	keys := make([]string, 0, len(lf.Files))
	for k := range lf.Files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Check compares every recorded file under projectRoot against its
// checksum. Results are sorted by key.
func (lf *LockFile) Check(projectRoot string) ([]FileStatus, error) {
	var result []FileStatus
	for _, key := range lf.Keys() {
		data, err := os.ReadFile(filepath.Join(projectRoot, filepath.FromSlash(key)))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				result = append(result, FileStatus{Key: key, State: StateMissing})
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", key, err)
		}

		lf.mu.Lock()
		recorded := lf.Files[key]
		lf.mu.Unlock()

		state := StateClean
		if Hash(data) != recorded {
			state = StateModified
		}
		result = append(result, FileStatus{Key: key, State: state})
	}
	return result, nil
}

// Stale returns recorded keys that are not in current, sorted.
func (lf *LockFile) Stale(current []string) []string {
	valid := make(map[string]bool, len(current))
	for _, k := range current {
		valid[k] = true
	}

	var stale []string
	for _, k := range lf.Keys() {
		if !valid[k] {
			stale = append(stale, k)
		}
	}
	return stale
}

// Clean removes entries that are no longer present in currentKeys. This
// prevents stale entries from accumulating.
func (lf *LockFile) Clean(currentKeys []string) {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	valid := make(map[string]bool, len(currentKeys))
	for _, k := range currentKeys {
		valid[k] = true
	}
	for k := range lf.Files {
		if !valid[k] {
			delete(lf.Files, k)
		}
	}
}
