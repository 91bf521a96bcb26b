package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestDiskWriter_CreatesParents(t *testing.T) {
	root := t.TempDir()
	w := &DiskWriter{BaseDir: root}

	require.NoError(t, w.WriteFile("plasmic/brand/a.tsx", "a", WriteOptions{}))
	assert.Equal(t, "a", readFile(t, filepath.Join(root, "plasmic", "brand", "a.tsx")))
}

func TestDiskWriter_NoForceKeepsExisting(t *testing.T) {
	root := t.TempDir()
	w := &DiskWriter{BaseDir: root}

	require.NoError(t, w.WriteFile("a.tsx", "original", WriteOptions{}))
	require.NoError(t, w.WriteFile("a.tsx", "replacement", WriteOptions{Force: false}))

	assert.Equal(t, "original", readFile(t, filepath.Join(root, "a.tsx")))
}

func TestDiskWriter_ForceOverwrites(t *testing.T) {
	root := t.TempDir()
	w := &DiskWriter{BaseDir: root}

	require.NoError(t, w.WriteFile("a.tsx", "original", WriteOptions{}))
	require.NoError(t, w.WriteFile("a.tsx", "replacement", WriteOptions{Force: true}))

	assert.Equal(t, "replacement", readFile(t, filepath.Join(root, "a.tsx")))
}

func TestDiskWriter_ForceCreatesMissing(t *testing.T) {
	root := t.TempDir()
	w := &DiskWriter{BaseDir: root}

	require.NoError(t, w.WriteFile("deep/b.tsx", "b", WriteOptions{Force: true}))
	assert.Equal(t, "b", readFile(t, filepath.Join(root, "deep", "b.tsx")))
}

func TestDiskWriter_Resolve(t *testing.T) {
	root := t.TempDir()
	w := &DiskWriter{BaseDir: root}

	assert.Equal(t, filepath.Join(root, "plasmic", "a.tsx"), w.Resolve("plasmic/a.tsx"))

	abs := filepath.Join(t.TempDir(), "abs.tsx")
	assert.Equal(t, abs, w.Resolve(filepath.ToSlash(abs)))
}

func TestDiskWriter_NoForceRejectsDirectory(t *testing.T) {
	root := t.TempDir()
	w := &DiskWriter{BaseDir: root}

	require.NoError(t, os.MkdirAll(filepath.Join(root, "plasmic", "a.tsx"), 0755))

	err := w.WriteFile("plasmic/a.tsx", "a", WriteOptions{})
	require.ErrorIs(t, err, ErrNotRegularFile)
}

func TestDiskWriter_ForceOntoDirectoryFails(t *testing.T) {
	root := t.TempDir()
	w := &DiskWriter{BaseDir: root}

	require.NoError(t, os.MkdirAll(filepath.Join(root, "a.tsx"), 0755))

	require.Error(t, w.WriteFile("a.tsx", "a", WriteOptions{Force: true}))
}
