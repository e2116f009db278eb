package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Load when the dictionary file does not
// exist yet.
var ErrNotFound = errors.New("dictionary file not found")

// Loader reads and validates the persisted dictionary from a single,
// explicitly injected path. Callers resolve the default path through
// configuration; the loader itself has no hidden defaults.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the dictionary file path this loader reads from.
func (l *Loader) Path() string {
	return l.path
}

// Exists reports whether the dictionary file is present on disk.
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// EnsureDataDir creates the dictionary's parent directory if needed.
func (l *Loader) EnsureDataDir() error {
	parent := filepath.Dir(l.path)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", parent, err)
	}
	return nil
}

// Load reads the dictionary file, deserializes it, and validates it.
func (l *Loader) Load() (*Dictionary, error) {
	contents, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s. Run 'poke-lookup update' to download it", ErrNotFound, l.path)
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", l.path, err)
	}

	dict, err := Decode(contents)
	if err != nil {
		return nil, fmt.Errorf("dictionary.Decode(%s) > %w", l.path, err)
	}
	if err := dict.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return dict, nil
}
