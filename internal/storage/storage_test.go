package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Resolve(t *testing.T) {
	base := t.TempDir()
	s := NewLocalStorage(base)

	tests := []struct {
		name          string
		ref           string
		expected      string
		expectedError bool
	}{
		{name: "media prefix", ref: "/media/ethical-hacking/module1.mp4", expected: filepath.Join(base, "ethical-hacking", "module1.mp4")},
		{name: "relative reference", ref: "grc/module1.mp4", expected: filepath.Join(base, "grc", "module1.mp4")},
		{name: "leading slash", ref: "/grc/module1.mp4", expected: filepath.Join(base, "grc", "module1.mp4")},
		{name: "inner dot segments", ref: "/media/grc/../grc/module1.mp4", expected: filepath.Join(base, "grc", "module1.mp4")},
		{name: "traversal", ref: "/media/../../etc/passwd", expectedError: true},
		{name: "empty", ref: "", expectedError: true},
		{name: "prefix only", ref: "/media/", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := s.Resolve(tt.ref)
			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidReference)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func TestLocalStorage_SizeAndOpen(t *testing.T) {
	base := t.TempDir()
	s := NewLocalStorage(base)

	path := filepath.Join(base, "video.mp4")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0644))

	t.Run("existing file", func(t *testing.T) {
		size, err := s.Size(path)
		require.NoError(t, err)
		assert.Equal(t, int64(10), size)

		f, err := s.Open(path)
		require.NoError(t, err)
		defer f.Close()

		buf := make([]byte, 4)
		_, err = f.ReadAt(buf, 3)
		require.NoError(t, err)
		assert.Equal(t, "3456", string(buf))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := s.Size(filepath.Join(base, "missing.mp4"))
		assert.True(t, errors.Is(err, os.ErrNotExist))

		_, err = s.Open(filepath.Join(base, "missing.mp4"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("directory", func(t *testing.T) {
		_, err := s.Size(base)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("read past end", func(t *testing.T) {
		f, err := s.Open(path)
		require.NoError(t, err)
		defer f.Close()

		_, err = f.ReadAt(make([]byte, 4), 8)
		assert.ErrorIs(t, err, io.EOF)
	})
}
