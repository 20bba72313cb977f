package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-matcher/internal/shared/storage/object"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "jane"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jane", "cv.pdf"), []byte("%PDF"), 0o644))

	rc, err := New(dir).Open(context.Background(), "jane/cv.pdf")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
}

func TestOpenRejectsEscapes(t *testing.T) {
	store := New(t.TempDir())
	for _, key := range []string{"../secret", "/etc/passwd", "", "."} {
		_, err := store.Open(context.Background(), key)
		assert.ErrorIs(t, err, object.ErrInvalidKey, key)
	}
}

func TestOpenWithoutBaseDirAllowsPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.docx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	rc, err := New("").Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
}

func TestOpenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(t.TempDir()).Open(ctx, "a.pdf")
	assert.ErrorIs(t, err, context.Canceled)
}
