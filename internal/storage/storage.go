// Package storage resolves module media references to files on the local filesystem
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// mediaPrefix is the URL prefix stored in module media references
const mediaPrefix = "/media/"

// ErrInvalidReference is returned for references that escape the media base path
var ErrInvalidReference = errors.New("invalid media reference")

// File is a readable media file
type File interface {
	io.ReaderAt
	io.Closer
}

// localStorage implements media storage using local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: filepath.Clean(basePath),
	}
}

// Resolve translates a stored media reference into a path under the base path.
// "/media/ethical-hacking/module1.mp4" becomes "<base>/ethical-hacking/module1.mp4".
func (s *localStorage) Resolve(ref string) (string, error) {
	rel := strings.TrimPrefix(ref, mediaPrefix)
	rel = strings.TrimLeft(rel, "/")
	if rel == "" {
		return "", ErrInvalidReference
	}

	fullPath := filepath.Join(s.basePath, filepath.FromSlash(rel))
	if fullPath != s.basePath && !strings.HasPrefix(fullPath, s.basePath+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}

	return fullPath, nil
}

// Size returns the current size of a regular file.
// Missing files and directories report os.ErrNotExist.
func (s *localStorage) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory: %w", path, os.ErrNotExist)
	}
	return info.Size(), nil
}

// Open opens a file for reading
func (s *localStorage) Open(path string) (File, error) {
	return os.Open(path)
}
