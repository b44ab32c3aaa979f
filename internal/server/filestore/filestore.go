// Package filestore persists uploaded payment evidence on local disk.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/coursepilot/coursepilot/pkg/idx"
)

var ErrInvalidName = errors.New("filestore: invalid file name")

// Store writes uploads under a single directory, prefixing each stored file
// with a fresh ID so concurrent uploads of the same name never collide.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the root directory uploads are stored in.
func (s *Store) Dir() string { return s.dir }

// Save streams r to disk and returns the stored file name, relative to Dir.
func (s *Store) Save(name string, r io.Reader) (string, error) {
	clean := sanitize(name)
	if clean == "" {
		return "", ErrInvalidName
	}

	stored := idx.New().String() + "-" + clean
	path := filepath.Join(s.dir, stored)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close upload: %w", err)
	}
	return stored, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *Store) Remove(stored string) error {
	clean := sanitize(stored)
	if clean == "" {
		return ErrInvalidName
	}
	err := os.Remove(filepath.Join(s.dir, clean))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// sanitize strips any path components so names cannot escape the store dir.
func sanitize(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
