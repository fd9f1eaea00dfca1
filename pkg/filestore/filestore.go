// Package filestore owns the on-disk directory of attachment binaries.
// Rows in the attachments table point into this directory; nothing else
// writes to it.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultExt is used when a buffer arrives without an original filename.
// Attachments are currently always images, so .png is the safe default.
const DefaultExt = ".png"

type FileStore struct {
	dir string
}

// New creates the storage directory if it does not exist yet.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create attachment storage dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

// destination builds the stored path for a new file: generated id plus the
// original extension, so names never collide and the type survives.
func (s *FileStore) destination(ext string) string {
	if ext == "" {
		ext = DefaultExt
	}
	return filepath.Join(s.dir, uuid.NewString()+ext)
}

// SaveCopy copies an existing file into the store and returns the stored
// absolute path.
func (s *FileStore) SaveCopy(sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("open source file %s: %w", sourcePath, err)
	}
	defer src.Close()

	dest := s.destination(filepath.Ext(sourcePath))
	dst, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create stored file %s: %w", dest, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("copy %s into store: %w", sourcePath, err)
	}
	return dest, nil
}

// SaveBuffer writes an in-memory payload (e.g. a pasted image) into the
// store. The extension comes from originalName when present.
func (s *FileStore) SaveBuffer(data []byte, originalName string) (string, error) {
	ext := ""
	if originalName != "" {
		ext = filepath.Ext(originalName)
	}

	dest := s.destination(ext)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("write stored file %s: %w", dest, err)
	}
	return dest, nil
}

// Remove deletes a stored file. A file that is already gone is not an
// error: the row is the source of truth and the sweep may race a manual
// cleanup.
func (s *FileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stored file %s: %w", path, err)
	}
	return nil
}

// Contains reports whether a path points inside the storage directory.
func (s *FileStore) Contains(path string) bool {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
