package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-matcher/internal/shared/storage/object"
)

// Store implements object.Source using the local filesystem.
type Store struct {
	baseDir string
}

// New creates a local source rooted at baseDir. An empty baseDir resolves
// keys relative to the working directory.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Open opens a stored file for reading. Keys may not escape baseDir.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := filepath.Clean(strings.TrimSpace(key))
	if clean == "." || clean == "" {
		return nil, object.ErrInvalidKey
	}
	if s.baseDir != "" && (strings.HasPrefix(clean, "..") || filepath.IsAbs(clean)) {
		return nil, fmt.Errorf("%w: %s", object.ErrInvalidKey, key)
	}

	f, err := os.Open(filepath.Join(s.baseDir, clean))
	if err != nil {
		return nil, err
	}
	return f, nil
}

var _ object.Source = (*Store)(nil)
