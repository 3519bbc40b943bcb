package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.hcl"))
	touch(t, filepath.Join(dir, "nested", "b.hcl"))
	touch(t, filepath.Join(dir, "nested", "c.yaml"))
	touch(t, filepath.Join(dir, "notes.txt"))

	t.Run("directory is walked recursively", func(t *testing.T) {
		files, err := FindFiles([]string{dir}, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.hcl"),
			filepath.Join(dir, "nested", "b.hcl"),
		}, files)
	})

	t.Run("multiple extensions", func(t *testing.T) {
		files, err := FindFiles([]string{dir}, ".yaml", ".yml")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "nested", "c.yaml")}, files)
	})

	t.Run("files and directories are de-duplicated", func(t *testing.T) {
		files, err := FindFiles([]string{filepath.Join(dir, "a.hcl"), dir}, ".hcl")
		require.NoError(t, err)
		assert.Len(t, files, 2)
		assert.Equal(t, filepath.Join(dir, "a.hcl"), files[0])
	})

	t.Run("single file with another extension is skipped", func(t *testing.T) {
		files, err := FindFiles([]string{filepath.Join(dir, "notes.txt")}, ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := FindFiles([]string{filepath.Join(dir, "missing")}, ".hcl")
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
