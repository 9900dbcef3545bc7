package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/assert"
)

func TestListFilesWithSuffix_NonRecursiveLexicographic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.so"), []byte{}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.so"), []byte{}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte{}, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "c.so"), []byte{}, 0o644))

	names, err := ListFilesWithSuffix(dir, ".so")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.so", "b.so"}, names)
}

func TestListFilesWithSuffix_MissingDirectory(t *testing.T) {
	_, err := ListFilesWithSuffix(filepath.Join(t.TempDir(), "does-not-exist"), ".so")
	assert.Error(t, err)
}
