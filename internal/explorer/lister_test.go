package explorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func TestList_DirectoriesFirstThenAlphabetical(t *testing.T) {
	r, root := newTestResolver(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("b"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "a"), 0755))

	lister := NewLister(r, "*")
	entries, err := lister.List(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b.txt"}, entryNames(entries))
	assert.Equal(t, KindDirectory, entries[0].Kind)
	assert.Equal(t, KindFile, entries[1].Kind)
}

func TestList_CaseInsensitiveOrder(t *testing.T) {
	r, root := newTestResolver(t)
	for _, name := range []string{"Zebra.txt", "apple.txt", "Banana.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0644))
	}

	entries, err := NewLister(r, "*").List(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"apple.txt", "Banana.txt", "Zebra.txt"}, entryNames(entries))
}

func TestList_Idempotent(t *testing.T) {
	r, root := newTestResolver(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.go"), []byte("package x"), 0644))

	lister := NewLister(r, "*")
	first, err := lister.List(root)
	require.NoError(t, err)
	second, err := lister.List(root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestList_GlobFilter(t *testing.T) {
	r, root := newTestResolver(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "util.go"), []byte("x"), 0644))

	entries, err := NewLister(r, "*.go").List(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go", "util.go"}, entryNames(entries))
}

func TestList_FileFailsWithNotADirectory(t *testing.T) {
	r, root := newTestResolver(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "plain.txt"), []byte("x"), 0644))

	_, err := NewLister(r, "*").List("plain.txt")
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestList_BrokenSymlinkDegradesToUnknown(t *testing.T) {
	r, root := newTestResolver(t)
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	entries, err := NewLister(r, "*").List(root)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "dangling", entries[0].Name)
	assert.Equal(t, KindUnknown, entries[0].Kind)
	assert.Equal(t, "N/A", entries[0].DisplayModTime())
}

func TestList_EntryMetadata(t *testing.T) {
	r, root := newTestResolver(t)
	file := filepath.Join(root, "data.bin")
	require.NoError(t, os.WriteFile(file, make([]byte, 2048), 0600))

	entries, err := NewLister(r, "*").List(root)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, int64(2048), e.Size)
	assert.Equal(t, "600", e.Permissions)
	assert.Equal(t, file, e.Path)
	assert.False(t, e.ModTime.IsZero())
}

func TestList_EmptyDirectory(t *testing.T) {
	r, root := newTestResolver(t)

	entries, err := NewLister(r, "*").List(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
