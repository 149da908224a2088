// Package filestore keeps cache entries as files in a data directory.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"

	llmcatalog "github.com/kingfs/go-llm-catalog"
)

// Store writes one file per key under Dir.
type Store struct {
	Dir string
}

// New creates a Store rooted at dir. An empty dir selects DefaultDir.
func New(dir string) (*Store, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &Store{Dir: dir}, nil
}

// DefaultDir returns the data directory following the XDG Base Directory spec.
//
//	Linux/macOS: $XDG_DATA_HOME/llm-catalog  (default ~/.local/share/llm-catalog)
//	Windows:     %LOCALAPPDATA%/llm-catalog
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "llm-catalog"), nil
	}

	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "llm-catalog"), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "llm-catalog"), nil
}

// path maps key to a file name. Escaping is injective, so distinct keys never
// share a file, and the result holds no path separators.
func (s *Store) path(key string) string {
	return filepath.Join(s.Dir, url.QueryEscape(key)+".json")
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, llmcatalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set replaces the file for key. The write goes to a temporary file that is
// renamed into place, so readers never see a partial entry.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}

func (s *Store) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
