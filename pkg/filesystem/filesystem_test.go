package filesystem

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFS(t *testing.T) FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/docs/archive", 0755))
	require.NoError(t, afero.WriteFile(mem, "/docs/notes.md", []byte("n"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/docs/todo.md", []byte("t"), 0644))
	return NewAferoFS(mem)
}

func TestAferoStat(t *testing.T) {
	fsys := memFS(t)

	info, err := fsys.Stat("/docs")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = fsys.Stat("/docs/notes.md")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = fsys.Stat("/missing")
	assert.Error(t, err)
}

func TestAferoReadDir(t *testing.T) {
	fsys := memFS(t)

	names, err := EntryNames(fsys, "/docs")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"archive", "notes.md", "todo.md"}, names)

	_, err = EntryNames(fsys, "/missing")
	assert.Error(t, err)
}

func TestIsDir(t *testing.T) {
	fsys := memFS(t)
	assert.True(t, IsDir(fsys, "/docs"))
	assert.False(t, IsDir(fsys, "/docs/notes.md"))
	assert.False(t, IsDir(fsys, "/missing"))
}

func TestOSImplementsFS(t *testing.T) {
	fsys := NewOS()

	dir := t.TempDir()
	assert.True(t, IsDir(fsys, dir))

	names, err := EntryNames(fsys, dir)
	require.NoError(t, err)
	assert.Empty(t, names)
}
